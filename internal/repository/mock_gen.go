// internal/repository/mock_gen.go
package repository

//go:generate mockgen -typed -source=./module.go -destination=../mocks/mock_module_repository.go -package=mocks ModuleRepositoryIface
//go:generate mockgen -typed -source=./organization.go -destination=../mocks/mock_organization_repository.go -package=mocks OrganizationRepositoryIface
//go:generate mockgen -typed -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -typed -source=./activation_attempt.go -destination=../mocks/mock_activation_attempt_repository.go -package=mocks ActivationAttemptRepositoryIface

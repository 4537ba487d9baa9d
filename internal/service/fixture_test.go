package service_test

import (
	"context"
	"testing"

	"github.com/dangerclosesec/modgate/internal/model"
	"github.com/dangerclosesec/modgate/internal/repository/memstore"
	"github.com/dangerclosesec/modgate/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fixture is an organization with a staff member, an org admin, a permission
// holder and a super admin, over a small catalog.
type fixture struct {
	store *memstore.Store

	catalog    *service.CatalogService
	actors     *service.ActorService
	activation *service.ActivationService
	queries    *service.QueryService
	attempts   *service.AttemptLogService

	org      model.Organization
	otherOrg model.Organization

	crm      model.Module
	payroll  model.Module
	userMgmt model.Module
	reports  model.Module

	staff      model.User
	admin      model.User
	reporter   model.User
	superAdmin model.User
	outsider   model.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	s := memstore.New()
	f := &fixture{store: s}

	f.crm = s.PutModule(model.Module{Name: "CRM", DisplayName: "CRM", PermissionType: model.PermissionPublic, SortOrder: 1})
	f.payroll = s.PutModule(model.Module{Name: "Payroll Management", DisplayName: "Payroll", PermissionType: model.PermissionAdmin, SortOrder: 2})
	f.userMgmt = s.PutModule(model.Module{Name: "User Management", DisplayName: "Users", PermissionType: model.PermissionSuperAdmin, SortOrder: 3})
	f.reports = s.PutModule(model.Module{Name: "Reports", DisplayName: "Reports", PermissionType: model.PermissionRequirePermission, SortOrder: 4})

	f.org = s.PutOrganization(model.Organization{Name: "Acme", Code: "acme"})
	f.otherOrg = s.PutOrganization(model.Organization{Name: "Globex", Code: "globex"})

	staffRole := s.PutRole(model.Role{Name: "Staff", Type: model.RoleStaff, OrganizationID: &f.org.ID})
	adminRole := s.PutRole(model.Role{Name: "Admin", Type: model.RoleAdmin, OrganizationID: &f.org.ID})
	superRole := s.PutRole(model.Role{Name: "Super Admin", Type: model.RoleSuperAdmin})
	reportRole := s.PutRole(model.Role{Name: "Analyst", Type: model.RoleCustom, OrganizationID: &f.org.ID}, "Reports:activate")

	f.staff = f.member(model.User{Email: "staff@acme.test", FirstName: "Sam"}, f.org.ID, staffRole.ID)
	f.admin = f.member(model.User{Email: "admin@acme.test", FirstName: "Ada"}, f.org.ID, adminRole.ID)
	f.reporter = f.member(model.User{Email: "analyst@acme.test", FirstName: "Ana"}, f.org.ID, reportRole.ID)
	f.superAdmin = f.member(model.User{Email: "root@platform.test", FirstName: "Root"}, f.otherOrg.ID, superRole.ID)
	f.outsider = f.member(model.User{Email: "staff@globex.test", FirstName: "Otto"}, f.otherOrg.ID, uuid.Nil)

	f.catalog = service.NewCatalogService(s.Modules(), nil, nil)
	f.actors = service.NewActorService(s.Users())
	f.attempts = service.NewAttemptLogService(s.Attempts())
	f.activation = service.NewActivationService(f.catalog, s.Organizations(), s.Users(), f.attempts, nil)
	f.queries = service.NewQueryService(f.catalog, s.Organizations(), s.Users(), nil)

	return f
}

func (f *fixture) member(u model.User, orgID, roleID uuid.UUID) model.User {
	u.CurrentOrganizationID = &orgID
	u = f.store.PutUser(u)
	f.store.AddMember(orgID, u.ID)
	if roleID != uuid.Nil {
		f.store.AssignRole(u.ID, roleID)
	}
	return u
}

func (f *fixture) actor(t *testing.T, u model.User) *model.Actor {
	t.Helper()
	a, err := f.actors.Resolve(context.Background(), u.ID)
	require.NoError(t, err)
	return a
}

func (f *fixture) orgRequest(t *testing.T, u model.User, m model.Module) model.EntitlementRequest {
	orgID := f.org.ID
	return model.EntitlementRequest{
		ModuleID:    m.ID,
		Actor:       f.actor(t, u),
		Scope:       model.ScopeOrganization,
		TargetOrgID: &orgID,
	}
}

func (f *fixture) personalRequest(t *testing.T, u model.User, m model.Module) model.EntitlementRequest {
	a := f.actor(t, u)
	return model.EntitlementRequest{
		ModuleID:    m.ID,
		Actor:       a,
		Scope:       model.ScopePersonal,
		TargetOrgID: a.CurrentOrganizationID,
	}
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// DecisionEffect is the outcome of an access decision.
type DecisionEffect string

const (
	EffectAllow DecisionEffect = "allow"
	// EffectRequireApproval is part of the vocabulary but never produced; approvals are synchronous.
	EffectRequireApproval DecisionEffect = "require_approval"
	EffectDeny            DecisionEffect = "deny"
)

// ActivationAttempt records one activate or deactivate call, whether it was allowed or not.
type ActivationAttempt struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Timestamp      time.Time      `json:"timestamp" gorm:"index;default:CURRENT_TIMESTAMP"`
	ModuleID       uuid.UUID      `json:"moduleId" gorm:"type:uuid;index"`
	ModuleName     string         `json:"moduleName"`
	ActorID        uuid.UUID      `json:"actorId" gorm:"type:uuid;index"`
	Scope          Scope          `json:"scope" gorm:"type:text"`
	SubjectID      uuid.UUID      `json:"subjectId" gorm:"type:uuid"`
	OrganizationID *uuid.UUID     `json:"organizationId,omitempty" gorm:"type:uuid;index"`
	DesiredState   DesiredState   `json:"desiredState" gorm:"type:text"`
	Effect         DecisionEffect `json:"effect" gorm:"type:text"`
	PermissionType string         `json:"permissionType" gorm:"type:text"`
	Approver       string         `json:"approverType"`
	Requirement    string         `json:"requirement,omitempty"`
	Success        bool           `json:"success"`
	Changed        bool           `json:"changed"`
	Error          string         `json:"error,omitempty"`
	RequestID      string         `json:"requestId,omitempty"`
	ClientIP       string         `json:"clientIp,omitempty"`
	UserAgent      string         `json:"userAgent,omitempty"`
	CreatedAt      time.Time      `json:"createdAt" gorm:"default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for ActivationAttempt
func (ActivationAttempt) TableName() string {
	return "module_activation_attempts"
}

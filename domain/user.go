package domain

import (
	"time"
)

type User struct {
	ID                 string    `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"column:name;not null" json:"name"`
	Email              string    `gorm:"column:email;unique;not null" json:"email"`
	PhoneNumber        string    `gorm:"column:phone_number" json:"phoneNumber"`
	Role               string    `gorm:"column:role;default:MEMBER" json:"role"`
	Status             string    `gorm:"column:status;default:PENDING" json:"status"`
	VerificationStatus string    `gorm:"column:verification_status;default:PENDING" json:"verificationStatus"`
	ReliabilityScore   int       `gorm:"column:reliability_score;default:100" json:"reliabilityScore"`
	Avatar             string    `gorm:"column:avatar" json:"avatar"`
	KycDocumentImage   string    `gorm:"column:kyc_document_image" json:"kycDocumentImage"`
	KycID              string    `gorm:"column:kyc_id" json:"kycId"`
	Occupation         string    `gorm:"column:occupation" json:"occupation"`
	Location           string    `gorm:"column:location" json:"location"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

const (
	RoleMember    = "MEMBER"
	RoleAdmin     = "ADMIN"
	RoleSuperuser = "SUPERUSER"
)

const (
	UserStatusActive    = "ACTIVE"
	UserStatusPending   = "PENDING"
	UserStatusSuspended = "SUSPENDED"
	UserStatusInvited   = "INVITED"
	UserStatusNew       = "NEW"
)

const (
	VerificationVerified   = "VERIFIED"
	VerificationPending    = "PENDING"
	VerificationRejected   = "REJECTED"
	VerificationUnverified = "UNVERIFIED"
)

var ValidUserRoles = map[string]bool{
	RoleMember:    true,
	RoleAdmin:     true,
	RoleSuperuser: true,
}

var ValidUserStatuses = map[string]bool{
	UserStatusActive:    true,
	UserStatusPending:   true,
	UserStatusSuspended: true,
	UserStatusInvited:   true,
	UserStatusNew:       true,
}

var ValidVerificationStatuses = map[string]bool{
	VerificationVerified:   true,
	VerificationPending:    true,
	VerificationRejected:   true,
	VerificationUnverified: true,
}

// UserPatch carries a partial update; nil fields are left unchanged.
type UserPatch struct {
	Name               *string `json:"name"`
	Status             *string `json:"status"`
	VerificationStatus *string `json:"verificationStatus"`
	Role               *string `json:"role"`
	ReliabilityScore   *int    `json:"reliabilityScore"`
	Avatar             *string `json:"avatar"`
	KycDocumentImage   *string `json:"kycDocumentImage"`
	Occupation         *string `json:"occupation"`
	PhoneNumber        *string `json:"phoneNumber"`
}

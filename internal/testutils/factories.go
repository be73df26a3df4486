package testutils

import (
	"time"

	"schoolpay-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	uid := uuid.New().String()
	return &models.User{
		UID:       uid,
		Email:     uid[:8] + "@test.com",
		Surname:   "Doe",
		Firstname: "John",
		Phone:     "+2348012345678",
		OrgStatus: "false",
		CreatedAt: time.Now().UTC(),
	}
}

// WithUID sets a custom uid for the user
func (f *UserFactory) WithUID(uid string) *models.User {
	user := f.Create()
	user.UID = uid
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	return &models.Organization{
		ID:            uuid.New().String(),
		InstituteName: "Test Academy",
		InstituteType: "Secondary",
		Email:         "admin@testacademy.com",
		Phone:         "+2348098765432",
		Address:       "1 School Road, Lagos",
		OwnerID:       uuid.New().String(),
		ReviewStatus:  "pending",
		CreatedAt:     time.Now().UTC(),
	}
}

// WithOwner sets a custom owner uid for the organization
func (f *OrganizationFactory) WithOwner(ownerID string) *models.Organization {
	org := f.Create()
	org.OwnerID = ownerID
	return org
}

// FeeFactory provides methods to create test Fee data
type FeeFactory struct{}

// NewFeeFactory creates a new FeeFactory
func NewFeeFactory() *FeeFactory {
	return &FeeFactory{}
}

// Create creates a test Fee with default values
func (f *FeeFactory) Create() *models.Fee {
	now := time.Now().UTC()
	return &models.Fee{
		ID:          uuid.New().String(),
		Title:       "First Term Tuition",
		Amount:      25000,
		Description: "Tuition for the first term",
		OrgID:       uuid.New().String(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// WithOrgID sets a custom organization id for the fee
func (f *FeeFactory) WithOrgID(orgID string) *models.Fee {
	fee := f.Create()
	fee.OrgID = orgID
	return fee
}

// TransactionFactory provides methods to create test Transaction data
type TransactionFactory struct{}

// NewTransactionFactory creates a new TransactionFactory
func NewTransactionFactory() *TransactionFactory {
	return &TransactionFactory{}
}

// Create creates a test Transaction with default values
func (f *TransactionFactory) Create() *models.Transaction {
	return &models.Transaction{
		ID:        uuid.New().String(),
		UserID:    uuid.New().String(),
		Email:     "payer@test.com",
		Amount:    25000,
		Name:      "First Term Tuition",
		Status:    "success",
		Reference: uuid.New().String(),
		To:        "Test Academy",
		OrgID:     uuid.New().String(),
		CreatedAt: time.Now().UTC(),
	}
}

// MessageFactory provides methods to create test Message data
type MessageFactory struct{}

// NewMessageFactory creates a new MessageFactory
func NewMessageFactory() *MessageFactory {
	return &MessageFactory{}
}

// Create creates a test Message with default values
func (f *MessageFactory) Create() *models.Message {
	return &models.Message{
		ID:         uuid.New().String(),
		ToUserID:   uuid.New().String(),
		FromUserID: uuid.New().String(),
		Text:       "Hello there",
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Status:     "sent",
		Unread:     true,
		CreatedAt:  time.Now().UTC(),
	}
}

// Between sets the sender and recipient of the message
func (f *MessageFactory) Between(fromUID, toUID string) *models.Message {
	msg := f.Create()
	msg.FromUserID = fromUID
	msg.ToUserID = toUID
	return msg
}

// FactorySet provides access to all factories
type FactorySet struct {
	User         *UserFactory
	Organization *OrganizationFactory
	Fee          *FeeFactory
	Transaction  *TransactionFactory
	Message      *MessageFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:         NewUserFactory(),
		Organization: NewOrganizationFactory(),
		Fee:          NewFeeFactory(),
		Transaction:  NewTransactionFactory(),
		Message:      NewMessageFactory(),
	}
}

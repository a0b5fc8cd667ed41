package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"minops/internal/audit"
	"minops/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByVerificationToken(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByResetToken(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) CountByRoleID(ctx context.Context, roleID uint) (int64, error) {
	args := m.Called(ctx, roleID)
	return args.Get(0).(int64), args.Error(1)
}

// MockRoleRepository is a mock implementation of RoleRepository.
type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) Create(ctx context.Context, role *model.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRoleRepository) FindByID(ctx context.Context, id uint) (*model.Role, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Role), args.Error(1)
}

func (m *MockRoleRepository) FindByName(ctx context.Context, name string) (*model.Role, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Role), args.Error(1)
}

func (m *MockRoleRepository) List(ctx context.Context) ([]model.Role, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Role), args.Error(1)
}

func (m *MockRoleRepository) Delete(ctx context.Context, role *model.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRoleRepository) ReplacePermissions(ctx context.Context, role *model.Role, permissions []model.Permission) error {
	args := m.Called(ctx, role, permissions)
	return args.Error(0)
}

func (m *MockRoleRepository) CountUsers(ctx context.Context, roleID uint) (int64, error) {
	args := m.Called(ctx, roleID)
	return args.Get(0).(int64), args.Error(1)
}

// MockPermissionRepository is a mock implementation of PermissionRepository.
type MockPermissionRepository struct {
	mock.Mock
}

func (m *MockPermissionRepository) Upsert(ctx context.Context, permission *model.Permission) error {
	args := m.Called(ctx, permission)
	return args.Error(0)
}

func (m *MockPermissionRepository) List(ctx context.Context) ([]model.Permission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Permission), args.Error(1)
}

func (m *MockPermissionRepository) ListNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPermissionRepository) FindByIDs(ctx context.Context, ids []uint) ([]model.Permission, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Permission), args.Error(1)
}

// MockMessageRepository is a mock implementation of MessageRepository.
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, message *model.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockMessageRepository) FindByID(ctx context.Context, id uint) (*model.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Message), args.Error(1)
}

func (m *MockMessageRepository) ListInbox(ctx context.Context, recipientID uint) ([]model.Message, error) {
	args := m.Called(ctx, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Message), args.Error(1)
}

func (m *MockMessageRepository) ListOutbox(ctx context.Context, senderID uint) ([]model.Message, error) {
	args := m.Called(ctx, senderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Message), args.Error(1)
}

func (m *MockMessageRepository) MarkInboxRead(ctx context.Context, recipientID uint, readAt time.Time) error {
	args := m.Called(ctx, recipientID, readAt)
	return args.Error(0)
}

func (m *MockMessageRepository) SetDeletedBySender(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMessageRepository) SetDeletedByRecipient(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMineRepository is a mock implementation of MineRepository.
type MockMineRepository struct {
	mock.Mock
}

func (m *MockMineRepository) Create(ctx context.Context, mine *model.Mine) error {
	args := m.Called(ctx, mine)
	return args.Error(0)
}

func (m *MockMineRepository) Update(ctx context.Context, mine *model.Mine) error {
	args := m.Called(ctx, mine)
	return args.Error(0)
}

func (m *MockMineRepository) Delete(ctx context.Context, mine *model.Mine) error {
	args := m.Called(ctx, mine)
	return args.Error(0)
}

func (m *MockMineRepository) FindByID(ctx context.Context, id uint) (*model.Mine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Mine), args.Error(1)
}

func (m *MockMineRepository) List(ctx context.Context) ([]model.Mine, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Mine), args.Error(1)
}

// MockSectorRepository is a mock implementation of SectorRepository.
type MockSectorRepository struct {
	mock.Mock
}

func (m *MockSectorRepository) Create(ctx context.Context, sector *model.Sector) error {
	args := m.Called(ctx, sector)
	return args.Error(0)
}

func (m *MockSectorRepository) Update(ctx context.Context, sector *model.Sector) error {
	args := m.Called(ctx, sector)
	return args.Error(0)
}

func (m *MockSectorRepository) Delete(ctx context.Context, sector *model.Sector) error {
	args := m.Called(ctx, sector)
	return args.Error(0)
}

func (m *MockSectorRepository) FindByID(ctx context.Context, id uint) (*model.Sector, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Sector), args.Error(1)
}

func (m *MockSectorRepository) ListByMine(ctx context.Context, mineID uint) ([]model.Sector, error) {
	args := m.Called(ctx, mineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Sector), args.Error(1)
}

// MockSensorRepository is a mock implementation of SensorRepository.
type MockSensorRepository struct {
	mock.Mock
}

func (m *MockSensorRepository) Create(ctx context.Context, sensor *model.Sensor) error {
	args := m.Called(ctx, sensor)
	return args.Error(0)
}

func (m *MockSensorRepository) Update(ctx context.Context, sensor *model.Sensor) error {
	args := m.Called(ctx, sensor)
	return args.Error(0)
}

func (m *MockSensorRepository) Delete(ctx context.Context, sensor *model.Sensor) error {
	args := m.Called(ctx, sensor)
	return args.Error(0)
}

func (m *MockSensorRepository) FindByID(ctx context.Context, id uint) (*model.Sensor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Sensor), args.Error(1)
}

func (m *MockSensorRepository) ListBySector(ctx context.Context, sectorID uint) ([]model.Sensor, error) {
	args := m.Called(ctx, sectorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Sensor), args.Error(1)
}

// MockTokenStore is a mock implementation of auth.TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uint, email string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, email, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uint, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uint), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

// MockMailer is a mock implementation of mail.Mailer.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendVerification(ctx context.Context, to, token string) error {
	args := m.Called(ctx, to, token)
	return args.Error(0)
}

func (m *MockMailer) SendPasswordReset(ctx context.Context, to, token string) error {
	args := m.Called(ctx, to, token)
	return args.Error(0)
}

// NopRecorder is an audit.Recorder that drops everything; service tests
// that don't assert on audit behavior use it.
type NopRecorder struct{}

func (NopRecorder) Record(ctx context.Context, actor audit.Actor, action model.LogAction, entityType string, entityID *uint, description string, oldValues, newValues any) {
}
func (NopRecorder) Login(ctx context.Context, actor audit.Actor)  {}
func (NopRecorder) Logout(ctx context.Context, actor audit.Actor) {}
func (NopRecorder) Created(ctx context.Context, actor audit.Actor, entityType string, entityID uint, newValues any) {
}
func (NopRecorder) Updated(ctx context.Context, actor audit.Actor, entityType string, entityID uint, oldValues, newValues any) {
}
func (NopRecorder) Deleted(ctx context.Context, actor audit.Actor, entityType string, entityID uint, oldValues any) {
}
func (NopRecorder) Viewed(ctx context.Context, actor audit.Actor, entityType string, entityID uint) {}

var _ audit.Recorder = NopRecorder{}

package migration

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockMigrator is a mock implementation of the Migrator interface for testing
type MockMigrator struct {
	mock.Mock
}

func (m *MockMigrator) Up() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockMigrator) Migrate(version uint) error {
	args := m.Called(version)
	return args.Error(0)
}

func (m *MockMigrator) Version() (uint, bool, error) {
	args := m.Called()
	return args.Get(0).(uint), args.Bool(1), args.Error(2)
}

func (m *MockMigrator) Close() (error, error) {
	args := m.Called()
	return args.Error(0), args.Error(1)
}

func engineFor(m Migrator) MigrationEngine {
	return func(source fs.FS, databaseURL string) (Migrator, error) {
		return m, nil
	}
}

var emptySource = fstest.MapFS{}

func TestMigration_Up_Success(t *testing.T) {
	mockM := new(MockMigrator)
	mockM.On("Up").Return(nil)
	mockM.On("Close").Return(nil, nil)

	mg := NewMigration(emptySource, "sqlite3://test.db", engineFor(mockM))

	assert.NoError(t, mg.Up())
	mockM.AssertExpectations(t)
}

func TestMigration_Up_NoChange(t *testing.T) {
	mockM := new(MockMigrator)
	mockM.On("Up").Return(migrate.ErrNoChange)
	mockM.On("Close").Return(nil, nil)

	mg := NewMigration(emptySource, "", engineFor(mockM))

	assert.NoError(t, mg.Up())
}

func TestMigration_Up_Failure(t *testing.T) {
	mockM := new(MockMigrator)
	mockM.On("Up").Return(errors.New("syntax error"))
	mockM.On("Close").Return(nil, errors.New("db close"))

	mg := NewMigration(emptySource, "", engineFor(mockM))
	err := mg.Up()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "syntax error")
	assert.Contains(t, err.Error(), "db close")
}

func TestMigration_Up_EngineError(t *testing.T) {
	engine := func(source fs.FS, databaseURL string) (Migrator, error) {
		return nil, errors.New("engine crash")
	}

	mg := NewMigration(emptySource, "", engine)
	err := mg.Up()

	assert.Error(t, err)
	assert.Equal(t, "engine crash", err.Error())
}

func TestMigration_To(t *testing.T) {
	mockM := new(MockMigrator)
	mockM.On("Migrate", uint(1)).Return(nil)
	mockM.On("Close").Return(nil, nil)

	mg := NewMigration(emptySource, "", engineFor(mockM))

	assert.NoError(t, mg.To(1))
	mockM.AssertExpectations(t)
}

func TestMigration_Version(t *testing.T) {
	mockM := new(MockMigrator)
	mockM.On("Version").Return(uint(0), false, migrate.ErrNilVersion).Once()
	mockM.On("Version").Return(uint(2), false, nil).Once()
	mockM.On("Close").Return(nil, nil)

	mg := NewMigration(emptySource, "", engineFor(mockM))

	v, dirty, err := mg.Version()
	assert.NoError(t, err)
	assert.Zero(t, v)
	assert.False(t, dirty)

	v, _, err = mg.Version()
	assert.NoError(t, err)
	assert.Equal(t, uint(2), v)
}

func TestSQLiteURL(t *testing.T) {
	assert.Equal(t, "sqlite3:///tmp/tau.db", SQLiteURL("/tmp/tau.db"))
}

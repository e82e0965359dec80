package sqlite

import (
	stderrors "errors"

	errors "github.com/frahmantamala/cashbook-management/internal"
	"github.com/frahmantamala/cashbook-management/internal/database"
	"github.com/frahmantamala/cashbook-management/internal/user"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// UserRepository implements the user.Repository interface over the shared
// database handle. Every method runs inside the handle lock.
type UserRepository struct {
	h *database.Handle
}

func NewUserRepository(h *database.Handle) user.Repository {
	return &UserRepository{h: h}
}

func (r *UserRepository) Create(u *user.User) error {
	r.h.Lock()
	defer r.h.Unlock()

	err := r.h.DB().Create(u).Error
	var sqliteErr sqlite3.Error
	if stderrors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		// The service pre-checks duplicates, but a violation that slips
		// past still surfaces as the duplicate sentinel, not a raw error.
		return errors.ErrDuplicateUser
	}
	return err
}

func (r *UserRepository) GetByUsername(username string) (*user.User, error) {
	r.h.Lock()
	defer r.h.Unlock()

	var u user.User
	err := r.h.DB().Where("username = ?", username).First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByNationalID(nationalID string) (*user.User, error) {
	r.h.Lock()
	defer r.h.Unlock()

	var u user.User
	err := r.h.DB().Where("national_id = ?", nationalID).First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByRole(role user.Role) (int64, error) {
	r.h.Lock()
	defer r.h.Unlock()

	var count int64
	err := r.h.DB().Model(&user.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

package services

import (
	"context"
	"strings"

	"github.com/sbilibin2017/gw-calorie-tracker/internal/logger"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/models"
)

// ProfileService reads and edits the caller's own account.
type ProfileService struct {
	reader UserReader
	writer UserWriter
}

func NewProfileService(reader UserReader, writer UserWriter) *ProfileService {
	return &ProfileService{reader: reader, writer: writer}
}

func (svc *ProfileService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile applies a partial update. Fields left unset keep their value;
// a target set to null is cleared. The merged targets must stay valid.
func (svc *ProfileService) UpdateProfile(ctx context.Context, userID int64, upd models.ProfileUpdate) (*models.User, error) {
	if upd.Empty() {
		return nil, invalid("nothing to update")
	}

	user, err := svc.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, invalid("name must not be empty")
		}
		user.Name = name
	}
	if upd.MinKcal.Set {
		user.MinKcal = upd.MinKcal.Value
	}
	if upd.MaxKcal.Set {
		user.MaxKcal = upd.MaxKcal.Value
	}
	if err := validateTargets(user.MinKcal, user.MaxKcal); err != nil {
		return nil, err
	}

	n, err := svc.writer.UpdateProfile(ctx, userID, user.Name, user.MinKcal, user.MaxKcal)
	if err != nil {
		logger.Log.Errorw("failed to update profile", "userID", userID, "err", err)
		return nil, err
	}
	if n == 0 {
		return nil, ErrUserNotFound
	}

	return user, nil
}

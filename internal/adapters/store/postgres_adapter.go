package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/google/uuid"
	"github.com/roamly/tourguide-backend/internal/domain/entities"
	"github.com/roamly/tourguide-backend/internal/domain/repositories"
	"github.com/roamly/tourguide-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/roamly/tourguide-backend/pkg/errors"
)

// PostgresUserStore implements UserRepository against an external PostgreSQL
// database. Reward deduplication relies on the unique
// (user_name, attraction_name) constraint on user_rewards, which gives the
// same atomic check-then-append guarantee the memory store provides with a
// per-user lock.
type PostgresUserStore struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewPostgresUserStore creates a user store backed by PostgreSQL
func NewPostgresUserStore(client *postgres.Client) repositories.UserRepository {
	return &PostgresUserStore{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// GetByUserName retrieves a user with full location and reward history
func (s *PostgresUserStore) GetByUserName(ctx context.Context, userName string) (*entities.User, error) {
	query, args, err := s.db.Select(
		"id", "user_name", "phone_number", "email_address", "latest_location_timestamp",
	).From("users").
		Where(goqu.Ex{"user_name": userName}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build user query", err)
	}

	user := &entities.User{}
	var latest sql.NullTime
	err = s.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.UserName,
		&user.PhoneNumber,
		&user.EmailAddress,
		&latest,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("user %s not found", userName))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get user", err)
	}
	if latest.Valid {
		user.LatestLocationTimestamp = latest.Time
	}

	if user.VisitedLocations, err = s.visitedLocations(ctx, userName); err != nil {
		return nil, err
	}
	if user.Rewards, err = s.rewards(ctx, userName); err != nil {
		return nil, err
	}
	return user, nil
}

// GetAll returns every known user with history
func (s *PostgresUserStore) GetAll(ctx context.Context) ([]*entities.User, error) {
	query, args, err := s.db.Select("user_name").From("users").Order(goqu.I("user_name").Asc()).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build users query", err)
	}

	rows, err := s.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list users", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, apperrors.NewInternalError("failed to scan user name", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate users", err)
	}

	users := make([]*entities.User, 0, len(names))
	for _, name := range names {
		user, err := s.GetByUserName(ctx, name)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// Add registers a new user
func (s *PostgresUserStore) Add(ctx context.Context, user *entities.User) error {
	if user == nil || user.UserName == "" {
		return apperrors.NewValidationError("user name is required")
	}

	record := goqu.Record{
		"id":            user.ID,
		"user_name":     user.UserName,
		"phone_number":  user.PhoneNumber,
		"email_address": user.EmailAddress,
	}
	query, args, err := s.db.Insert("users").Rows(record).OnConflict(goqu.DoNothing()).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	result, err := s.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create user", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to read insert result", err)
	}
	if affected == 0 {
		return apperrors.NewConflictError(fmt.Sprintf("user %s already exists", user.UserName))
	}

	for _, visited := range user.VisitedLocations {
		if _, err := s.AddVisitedLocation(ctx, user.UserName, visited); err != nil {
			return err
		}
	}
	return nil
}

// AddVisitedLocation appends a visited location and returns the updated user
func (s *PostgresUserStore) AddVisitedLocation(ctx context.Context, userName string, visited entities.VisitedLocation) (*entities.User, error) {
	record := goqu.Record{
		"user_name":    userName,
		"user_id":      visited.UserID,
		"latitude":     visited.Location.Latitude,
		"longitude":    visited.Location.Longitude,
		"time_visited": visited.TimeVisited,
	}
	query, args, err := s.db.Insert("visited_locations").Rows(record).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build insert query", err)
	}
	if _, err := s.client.DB().ExecContext(ctx, query, args...); err != nil {
		return nil, apperrors.NewInternalError("failed to append visited location", err)
	}

	update, args, err := s.db.Update("users").
		Set(goqu.Record{"latest_location_timestamp": visited.TimeVisited}).
		Where(goqu.Ex{"user_name": userName}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build update query", err)
	}
	if _, err := s.client.DB().ExecContext(ctx, update, args...); err != nil {
		return nil, apperrors.NewInternalError("failed to update latest location timestamp", err)
	}

	return s.GetByUserName(ctx, userName)
}

// AddReward appends a reward unless the attraction is already rewarded
func (s *PostgresUserStore) AddReward(ctx context.Context, userName string, reward entities.UserReward) (bool, error) {
	record := goqu.Record{
		"user_name":            userName,
		"attraction_name":      reward.Attraction.AttractionName,
		"attraction_city":      reward.Attraction.City,
		"attraction_state":     reward.Attraction.State,
		"attraction_latitude":  reward.Attraction.Location.Latitude,
		"attraction_longitude": reward.Attraction.Location.Longitude,
		"visit_latitude":       reward.VisitedLocation.Location.Latitude,
		"visit_longitude":      reward.VisitedLocation.Location.Longitude,
		"visit_user_id":        reward.VisitedLocation.UserID,
		"time_visited":         reward.VisitedLocation.TimeVisited,
		"reward_points":        reward.RewardPoints,
	}
	// ON CONFLICT DO NOTHING against the (user_name, attraction_name)
	// unique constraint makes the dedupe atomic.
	query, args, err := s.db.Insert("user_rewards").Rows(record).OnConflict(goqu.DoNothing()).ToSQL()
	if err != nil {
		return false, apperrors.NewInternalError("failed to build insert query", err)
	}

	result, err := s.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return false, apperrors.NewInternalError("failed to append reward", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.NewInternalError("failed to read insert result", err)
	}
	return affected > 0, nil
}

// GetRewards returns the user's earned rewards
func (s *PostgresUserStore) GetRewards(ctx context.Context, userName string) ([]entities.UserReward, error) {
	if _, err := s.userID(ctx, userName); err != nil {
		return nil, err
	}
	return s.rewards(ctx, userName)
}

func (s *PostgresUserStore) userID(ctx context.Context, userName string) (uuid.UUID, error) {
	query, args, err := s.db.Select("id").From("users").Where(goqu.Ex{"user_name": userName}).ToSQL()
	if err != nil {
		return uuid.Nil, apperrors.NewInternalError("failed to build user query", err)
	}

	var id uuid.UUID
	err = s.client.DB().QueryRowContext(ctx, query, args...).Scan(&id)
	if err == sql.ErrNoRows {
		return uuid.Nil, apperrors.NewNotFoundError(fmt.Sprintf("user %s not found", userName))
	}
	if err != nil {
		return uuid.Nil, apperrors.NewInternalError("failed to get user", err)
	}
	return id, nil
}

func (s *PostgresUserStore) visitedLocations(ctx context.Context, userName string) ([]entities.VisitedLocation, error) {
	query, args, err := s.db.Select(
		"user_id", "latitude", "longitude", "time_visited",
	).From("visited_locations").
		Where(goqu.Ex{"user_name": userName}).
		Order(goqu.I("time_visited").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build visits query", err)
	}

	rows, err := s.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list visited locations", err)
	}
	defer rows.Close()

	var visits []entities.VisitedLocation
	for rows.Next() {
		var v entities.VisitedLocation
		if err := rows.Scan(&v.UserID, &v.Location.Latitude, &v.Location.Longitude, &v.TimeVisited); err != nil {
			return nil, apperrors.NewInternalError("failed to scan visited location", err)
		}
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

func (s *PostgresUserStore) rewards(ctx context.Context, userName string) ([]entities.UserReward, error) {
	query, args, err := s.db.Select(
		"attraction_name", "attraction_city", "attraction_state",
		"attraction_latitude", "attraction_longitude",
		"visit_latitude", "visit_longitude", "visit_user_id", "time_visited",
		"reward_points",
	).From("user_rewards").
		Where(goqu.Ex{"user_name": userName}).
		Order(goqu.I("time_visited").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build rewards query", err)
	}

	rows, err := s.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list rewards", err)
	}
	defer rows.Close()

	var rewards []entities.UserReward
	for rows.Next() {
		var r entities.UserReward
		if err := rows.Scan(
			&r.Attraction.AttractionName,
			&r.Attraction.City,
			&r.Attraction.State,
			&r.Attraction.Location.Latitude,
			&r.Attraction.Location.Longitude,
			&r.VisitedLocation.Location.Latitude,
			&r.VisitedLocation.Location.Longitude,
			&r.VisitedLocation.UserID,
			&r.VisitedLocation.TimeVisited,
			&r.RewardPoints,
		); err != nil {
			return nil, apperrors.NewInternalError("failed to scan reward", err)
		}
		rewards = append(rewards, r)
	}
	return rewards, rows.Err()
}

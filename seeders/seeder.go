package seeders

import (
	"context"
	"errors"
	"fmt"

	"gearguard/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Seeder inserts demo data; every step can be run repeatedly.
type Seeder struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func New(db *pgxpool.Pool, logger *zap.Logger) *Seeder {
	return &Seeder{db: db, logger: logger}
}

// SeedUsers creates the demo accounts that do not exist yet.
func (s *Seeder) SeedUsers(ctx context.Context) error {
	s.logger.Info("seeding users")

	hash, err := utils.HashPassword(DemoPassword)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	for _, u := range demoUsers {
		id, err := s.lookupID(ctx, "SELECT id FROM users WHERE LOWER(email) = LOWER($1) AND deleted_at IS NULL", u.Email)
		if err != nil {
			return err
		}
		if id != 0 {
			s.logger.Debug("user exists, skipping", zap.String("email", u.Email))
			continue
		}
		if _, err := s.db.Exec(ctx,
			"INSERT INTO users (email, name, password_hash, role) VALUES ($1, $2, $3, $4)",
			u.Email, u.Name, hash, u.Role,
		); err != nil {
			return fmt.Errorf("insert user %s: %w", u.Email, err)
		}
		s.logger.Info("user created", zap.String("email", u.Email), zap.String("role", u.Role))
	}
	return nil
}

// SeedTeams creates the demo teams and their memberships. Users must exist.
func (s *Seeder) SeedTeams(ctx context.Context) error {
	s.logger.Info("seeding teams")

	for _, t := range demoTeams {
		teamID, err := s.lookupID(ctx, "SELECT id FROM maintenance_teams WHERE name = $1 AND deleted_at IS NULL", t.Name)
		if err != nil {
			return err
		}
		if teamID == 0 {
			if err := s.db.QueryRow(ctx,
				"INSERT INTO maintenance_teams (name, description) VALUES ($1, $2) RETURNING id",
				t.Name, t.Description,
			).Scan(&teamID); err != nil {
				return fmt.Errorf("insert team %s: %w", t.Name, err)
			}
			s.logger.Info("team created", zap.String("name", t.Name))
		}

		for _, email := range t.Members {
			userID, err := s.userID(ctx, email)
			if err != nil {
				return err
			}
			if _, err := s.db.Exec(ctx,
				`INSERT INTO team_members (team_id, user_id) VALUES ($1, $2)
				 ON CONFLICT (team_id, user_id) WHERE deleted_at IS NULL DO NOTHING`,
				teamID, userID,
			); err != nil {
				return fmt.Errorf("add %s to %s: %w", email, t.Name, err)
			}
		}
	}
	return nil
}

// SeedEquipment inserts the demo equipment. Teams and users must exist.
func (s *Seeder) SeedEquipment(ctx context.Context) error {
	s.logger.Info("seeding equipment")

	for _, eq := range demoEquipment {
		teamID, err := s.lookupID(ctx, "SELECT id FROM maintenance_teams WHERE name = $1 AND deleted_at IS NULL", eq.Team)
		if err != nil {
			return err
		}
		if teamID == 0 {
			return fmt.Errorf("team %q not found, seed teams first", eq.Team)
		}

		var technicianID *uint64
		if eq.Technician != "" {
			id, err := s.userID(ctx, eq.Technician)
			if err != nil {
				return err
			}
			technicianID = &id
		}

		tag, err := s.db.Exec(ctx,
			`INSERT INTO equipment (name, serial_number, category, location, department,
			                        purchase_date, warranty_expiry, maintenance_team_id, default_technician_id)
			 VALUES ($1, $2, $3, $4, $5, $6::date, $7::date, $8, $9)
			 ON CONFLICT (serial_number) DO NOTHING`,
			eq.Name, eq.SerialNumber, eq.Category, eq.Location, eq.Department,
			eq.PurchaseDate, eq.Warranty, teamID, technicianID,
		)
		if err != nil {
			return fmt.Errorf("insert equipment %s: %w", eq.SerialNumber, err)
		}
		if tag.RowsAffected() > 0 {
			s.logger.Info("equipment created", zap.String("serial", eq.SerialNumber))
		}
	}
	return nil
}

// All runs every step in dependency order.
func (s *Seeder) All(ctx context.Context) error {
	for _, step := range []func(context.Context) error{s.SeedUsers, s.SeedTeams, s.SeedEquipment} {
		if err := step(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) userID(ctx context.Context, email string) (uint64, error) {
	id, err := s.lookupID(ctx, "SELECT id FROM users WHERE LOWER(email) = LOWER($1) AND deleted_at IS NULL", email)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, fmt.Errorf("user %q not found, seed users first", email)
	}
	return id, nil
}

// lookupID returns 0 when no row matches.
func (s *Seeder) lookupID(ctx context.Context, query string, arg any) (uint64, error) {
	var id uint64
	err := s.db.QueryRow(ctx, query, arg).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("lookup %v: %w", arg, err)
	}
	return id, nil
}

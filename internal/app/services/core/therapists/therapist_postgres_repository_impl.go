package therapists

import (
	"calmora-service/internal/app/contracts"
	"calmora-service/internal/app/models"
	"calmora-service/internal/pkg/exceptions"
	"calmora-service/internal/pkg/queries"
	"context"
	"errors"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const pgUniqueViolationCode = "23505"

type therapistPostgresRepository struct {
	Pool *pgxpool.Pool
	Log  *zap.Logger
}

var (
	therapistPostgresRepositoryInstance contracts.TherapistRepository
	onceTherapistPostgresRepository     sync.Once
)

func NewTherapistPostgresRepository(pool *pgxpool.Pool, logger *zap.Logger) contracts.TherapistRepository {
	onceTherapistPostgresRepository.Do(func() {
		instance := &therapistPostgresRepository{
			Pool: pool,
			Log:  logger,
		}
		therapistPostgresRepositoryInstance = instance
	})
	return therapistPostgresRepositoryInstance
}

func (r *therapistPostgresRepository) Insert(ctx context.Context, therapist *models.Therapist) (*models.Therapist, error) {
	err := r.Pool.QueryRow(
		ctx, queries.InsertTherapist,
		therapist.Name,
		therapist.Email,
		therapist.Phone,
	).Scan(&therapist.ID, &therapist.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			return nil, exceptions.ErrEmailAlreadyExist(err)
		}
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}

	return therapist, nil
}

func (r *therapistPostgresRepository) FindByID(ctx context.Context, therapistID int64) (*models.Therapist, error) {
	var therapist models.Therapist
	err := r.Pool.QueryRow(ctx, queries.GetTherapistByID, therapistID).Scan(
		&therapist.ID,
		&therapist.Name,
		&therapist.Email,
		&therapist.Phone,
		&therapist.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	return &therapist, nil
}

func (r *therapistPostgresRepository) FindAll(ctx context.Context) ([]models.Therapist, error) {
	rows, err := r.Pool.Query(ctx, queries.GetAllTherapists)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var therapists []models.Therapist
	for rows.Next() {
		var therapist models.Therapist
		err := rows.Scan(
			&therapist.ID,
			&therapist.Name,
			&therapist.Email,
			&therapist.Phone,
			&therapist.CreatedAt,
		)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		therapists = append(therapists, therapist)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	return therapists, nil
}

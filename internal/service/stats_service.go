package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"medshift-scheduler/config"
	"medshift-scheduler/internal/delivery/dto"
	"medshift-scheduler/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// StatsService serves the dashboard aggregates with a Redis read-through
// cache. A cache miss recomputes from PostgreSQL and stores the snapshot
// with the configured TTL; Redis being down degrades to uncached reads.
type StatsService interface {
	DashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
	Invalidate(ctx context.Context)
}

type statsService struct {
	db        *gorm.DB
	redis     *redis.Client
	log       *logrus.Logger
	statsRepo repository.StatsRepository
	cacheCfg  config.CacheConfig
}

func NewStatsService(db *gorm.DB, redisClient *redis.Client, log *logrus.Logger, statsRepo repository.StatsRepository, cacheCfg config.CacheConfig) StatsService {
	return &statsService{
		db:        db,
		redis:     redisClient,
		log:       log,
		statsRepo: statsRepo,
		cacheCfg:  cacheCfg,
	}
}

func (s *statsService) cacheKey() string {
	return s.cacheCfg.Namespace + ":stats:dashboard"
}

func (s *statsService) DashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	key := s.cacheKey()

	if s.redis != nil {
		cached, err := s.redis.Get(ctx, key).Result()
		if err == nil {
			var stats dto.DashboardStatsResponse
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
			s.log.Warnf("Failed to decode cached stats, recomputing: %+v", err)
		} else if !errors.Is(err, redis.Nil) {
			s.log.Warnf("Failed to read stats cache: %+v", err)
		}
	}

	stats, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		payload, err := json.Marshal(stats)
		if err == nil {
			if err := s.redis.Set(ctx, key, payload, s.cacheCfg.StatsTTL).Err(); err != nil {
				s.log.Warnf("Failed to write stats cache: %+v", err)
			}
		}
	}

	return stats, nil
}

// Invalidate drops the cached snapshot. Called after writes that change the
// aggregates so the next dashboard read recomputes.
func (s *statsService) Invalidate(ctx context.Context) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, s.cacheKey()).Err(); err != nil {
		s.log.Warnf("Failed to invalidate stats cache: %+v", err)
	}
}

func (s *statsService) compute(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	db := s.db.WithContext(ctx)

	employees, err := s.statsRepo.CountActiveEmployees(db)
	if err != nil {
		return nil, err
	}

	departments, err := s.statsRepo.CountActiveDepartments(db)
	if err != nil {
		return nil, err
	}

	positions, err := s.statsRepo.CountActivePositions(db)
	if err != nil {
		return nil, err
	}

	locations, err := s.statsRepo.CountActiveLocations(db)
	if err != nil {
		return nil, err
	}

	shiftsByStatus, err := s.statsRepo.ShiftCountsByStatus(db)
	if err != nil {
		return nil, err
	}

	employeesByType, err := s.statsRepo.EmployeeCountsByType(db)
	if err != nil {
		return nil, err
	}

	rates, err := s.statsRepo.HourlyRateStats(db)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		ActiveEmployees:   employees,
		ActiveDepartments: departments,
		ActivePositions:   positions,
		ActiveLocations:   locations,
		ShiftsByStatus:    shiftsByStatus,
		EmployeesByType:   employeesByType,
		AvgHourlyRate:     rates.AvgRate,
		MinHourlyRate:     rates.MinRate,
		MaxHourlyRate:     rates.MaxRate,
		CachedAt:          time.Now().UTC().Format(time.RFC3339),
	}, nil
}

package mask

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"
)

// CreateProfile saves a new profile
func (s *Store) CreateProfile(ctx context.Context, name, pattern, prefix string) (Profile, error) {
	p := Profile{
		Name:    name,
		Pattern: pattern,
		Prefix:  prefix,
	}

	if err := p.validate(); err != nil {
		return p, err
	}

	_, err := s.getProfile(ctx, name)
	if err == nil {
		return p, ErrProfileExists
	}

	if !errors.Is(err, ErrProfileNotFound) {
		return p, err
	}

	id := s.genProfile.Next()
	now := time.Now()

	_, err = s.db.
		ExecBuilder(ctx, s.createBuilder().
			Insert("<prefix>mask_profile").
			Set("id", id.Int64).
			Set("name", name).
			Set("pattern", pattern).
			Set("prefix", prefix).
			Set("created_at", now).
			Set("updated_at", now).
			End())

	if err != nil {
		// lost a race on the unique name
		if _, e := s.getProfile(ctx, name); e == nil {
			return p, ErrProfileExists
		}

		s.logger.Error("mask: CreateProfile",
			slog.String("tag", "db"),
			slog.String("name", name),
			slog.Any("err", err))
		return p, ErrBadDatabase
	}

	p.ID = id.Int64
	p.CreatedAt = now
	p.UpdatedAt = now

	return p, nil
}

// GetProfile get profile by name
func (s *Store) GetProfile(ctx context.Context, name string) (Profile, error) {
	p, ok := s.cachedProfiles.Get(name)
	if ok {
		return p, nil
	}

	gen := s.evictions.Load()

	p, err := s.getProfile(ctx, name)
	if err != nil {
		return p, err
	}

	s.cacheProfile(gen, p)

	return p, nil
}

// cacheProfile caches p unless an eviction happened after gen was loaded
func (s *Store) cacheProfile(gen uint64, p Profile) {
	if s.evictions.Load() != gen {
		return
	}

	s.cachedProfiles.Add(p.Name, p)

	if s.evictions.Load() != gen {
		s.cachedProfiles.Remove(p.Name)
	}
}

func (s *Store) evict(name string) {
	s.evictions.Add(1)
	s.cachedProfiles.Remove(name)
}

func (s *Store) getProfile(ctx context.Context, name string) (Profile, error) {
	var p Profile

	err := s.db.
		QueryRowBuilder(ctx, s.createBuilder().
			Select("<prefix>mask_profile").
			Where("name = {name}").
			Param("name", name)).
		Bind(&p)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return p, ErrProfileNotFound
		}
		s.logger.Error("mask: getProfile",
			slog.String("tag", "db"),
			slog.String("name", name),
			slog.Any("err", err))
		return p, ErrBadDatabase
	}

	return p, nil
}

// QueryProfiles list all profiles ordered by name
func (s *Store) QueryProfiles(ctx context.Context) ([]Profile, error) {
	rows, err := s.db.
		QueryBuilder(ctx, s.createBuilder().
			SQL("SELECT * FROM <prefix>mask_profile ORDER BY name"))

	if err != nil {
		s.logger.Error("mask: QueryProfiles",
			slog.String("tag", "db"),
			slog.Any("err", err))
		return nil, ErrBadDatabase
	}

	var items []Profile
	err = rows.Bind(&items)
	if err != nil {
		s.logger.Error("mask: QueryProfiles:Bind",
			slog.String("tag", "db"),
			slog.Any("err", err))
		return nil, ErrBadDatabase
	}

	return items, nil
}

// UpdateProfile change pattern and prefix of the named profile
func (s *Store) UpdateProfile(ctx context.Context, name, pattern, prefix string) error {
	p := Profile{Name: name, Pattern: pattern, Prefix: prefix}
	if err := p.validate(); err != nil {
		return err
	}

	s.evict(name)
	defer s.evict(name)

	r, err := s.db.
		ExecBuilder(ctx, s.createBuilder().
			Update("<prefix>mask_profile").
			Set("pattern", pattern).
			Set("prefix", prefix).
			Set("updated_at", time.Now()).
			Where("name = {name}").
			Param("name", name))

	if err != nil {
		s.logger.Error("mask: UpdateProfile",
			slog.String("tag", "db"),
			slog.String("name", name),
			slog.Any("err", err))
		return ErrBadDatabase
	}

	return checkAffected(r)
}

// DeleteProfile delete the named profile
func (s *Store) DeleteProfile(ctx context.Context, name string) error {
	s.evict(name)
	defer s.evict(name)

	r, err := s.db.
		ExecBuilder(ctx, s.createBuilder().
			Delete("<prefix>mask_profile").
			Where("name = {name}").
			Param("name", name))

	if err != nil {
		s.logger.Error("mask: DeleteProfile",
			slog.String("tag", "db"),
			slog.String("name", name),
			slog.Any("err", err))
		return ErrBadDatabase
	}

	return checkAffected(r)
}

func checkAffected(r sql.Result) error {
	n, err := r.RowsAffected()
	if err != nil {
		return ErrBadDatabase
	}

	if n == 0 {
		return ErrProfileNotFound
	}

	return nil
}

package mask

import (
	"context"
	"embed"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/yaitoo/sqle"
	"github.com/yaitoo/sqle/migrate"
	"github.com/yaitoo/sqle/shardid"
)

var (
	//go:embed migration
	migration embed.FS

	defaultCacheSize = 256
	defaultCacheTTL  = 5 * time.Minute
	defaultTokenTTL  = 24 * time.Hour
)

// Store persists named profiles in a database
type Store struct {
	db     *sqle.DB
	prefix string
	logger *slog.Logger

	genProfile *shardid.Generator

	signKey  []byte
	tokenTTL time.Duration

	cachedProfiles    *expirable.LRU[string, Profile]
	cachedProfilesTTL time.Duration
	cachedProfilesLen int
	// bumped on every eviction so reads started before a write are not cached
	evictions atomic.Uint64
}

type StoreOption func(s *Store)

// WithTablePrefix add prefix for mask tables
func WithTablePrefix(prefix string) StoreOption {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// WithStoreLogger set logger for store
func WithStoreLogger(l *slog.Logger) StoreOption {
	return func(s *Store) {
		s.logger = l
	}
}

// WithGenProfile set custom shardid generator for profile id
func WithGenProfile(gen *shardid.Generator) StoreOption {
	return func(s *Store) {
		s.genProfile = gen
	}
}

// WithCache setup size and ttl of the profile cache
func WithCache(size int, ttl time.Duration) StoreOption {
	return func(s *Store) {
		s.cachedProfilesLen = size
		s.cachedProfilesTTL = ttl
	}
}

// WithSignKey setup signature key for profile tokens. An empty key is ignored.
func WithSignKey(key string) StoreOption {
	return func(s *Store) {
		if key != "" {
			s.signKey = getSignKey(key)
		}
	}
}

// WithTokenTTL setup ttl for profile tokens
func WithTokenTTL(d time.Duration) StoreOption {
	return func(s *Store) {
		if d > 0 {
			s.tokenTTL = d
		}
	}
}

// NewStore create a profile store with db and options
func NewStore(db *sqle.DB, options ...StoreOption) *Store {
	s := &Store{
		db: db,
	}

	for _, o := range options {
		o(s)
	}

	if s.prefix != "" && !strings.HasSuffix(s.prefix, "_") {
		s.prefix = s.prefix + "_"
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}

	if s.genProfile == nil {
		s.genProfile = shardid.New()
	}

	if s.signKey == nil {
		s.signKey = randSignKey()
	}

	if s.tokenTTL <= 0 {
		s.tokenTTL = defaultTokenTTL
	}

	if s.cachedProfilesLen < 1 {
		s.cachedProfilesLen = defaultCacheSize
	}

	if s.cachedProfilesTTL <= 0 {
		s.cachedProfilesTTL = defaultCacheTTL
	}

	s.cachedProfiles = expirable.NewLRU[string, Profile](s.cachedProfilesLen, nil, s.cachedProfilesTTL)

	return s
}

func (s *Store) createBuilder() *sqle.Builder {
	return sqle.New().Input("prefix", s.prefix)
}

// CreateMigrator discovers the versioned schema scripts of the profile store
func (s *Store) CreateMigrator(options ...migrate.Option) (*migrate.Migrator, error) {
	m := migrate.New(s.db)

	options = append(options, migrate.WithModule("mask"))
	err := m.Discover(migration, options...)
	if err != nil {
		return nil, err
	}

	var vers []migrate.Semver

	for _, v := range m.Versions {

		var migrations []migrate.Migration
		for _, m := range v.Migrations {
			m.Scripts = strings.ReplaceAll(m.Scripts, "<prefix>", s.prefix)
			migrations = append(migrations, m)
		}

		v.Migrations = migrations
		vers = append(vers, v)
	}

	m.Versions = vers

	return m, nil
}

// Migrate applies pending schema versions, e.g. Migrate(ctx, migrate.WithSuffix(".sqlite"))
func (s *Store) Migrate(ctx context.Context, options ...migrate.Option) error {
	m, err := s.CreateMigrator(options...)
	if err != nil {
		s.logger.Error("mask: Migrate",
			slog.String("tag", "db"),
			slog.String("step", "discover"),
			slog.Any("err", err))
		return ErrBadDatabase
	}

	if err = m.Init(ctx); err != nil {
		s.logger.Error("mask: Migrate",
			slog.String("tag", "db"),
			slog.String("step", "init"),
			slog.Any("err", err))
		return ErrBadDatabase
	}

	if err = m.Migrate(ctx); err != nil {
		s.logger.Error("mask: Migrate",
			slog.String("tag", "db"),
			slog.String("step", "migrate"),
			slog.Any("err", err))
		return ErrBadDatabase
	}

	return nil
}

// Formatter create a formatter from the named profile
func (s *Store) Formatter(ctx context.Context, name string, options ...Option) (*Formatter, error) {
	p, err := s.GetProfile(ctx, name)
	if err != nil {
		return nil, err
	}

	options = append([]Option{WithPrefix(p.Prefix), WithLogger(s.logger)}, options...)

	return New(p.Pattern, options...), nil
}

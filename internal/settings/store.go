package settings

import (
	"context"

	"frontsession/internal/models"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store persists settings in the settings table and caches whole namespaces
type Store struct {
	db    *gorm.DB
	cache *lru.Cache[string, Map]
	log   zerolog.Logger
}

func NewStore(db *gorm.DB, log zerolog.Logger) (*Store, error) {
	l, err := lru.New[string, Map](64)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, cache: l, log: log}, nil
}

// Namespace returns a live reader bound to ns
func (s *Store) Namespace(ns string) *Namespace {
	return &Namespace{store: s, name: ns}
}

// Load returns every value of ns. A failed read yields an empty map; missing
// settings read as zero values.
func (s *Store) Load(ctx context.Context, ns string) Map {
	if m, ok := s.cache.Get(ns); ok {
		return m
	}

	var rows []models.Setting
	if err := s.db.WithContext(ctx).Where("namespace = ?", ns).Find(&rows).Error; err != nil {
		s.log.Warn().Err(err).Str("namespace", ns).Msg("settings load failed")
		return Map{}
	}

	m := make(Map, len(rows))
	for _, r := range rows {
		m[r.Name] = r.Value
	}
	s.cache.Add(ns, m)
	return m
}

// Set upserts one value and drops the cached namespace
func (s *Store) Set(ctx context.Context, ns, name, value string) error {
	row := models.Setting{Namespace: ns, Name: name, Value: value}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "namespace"}, {Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&row).Error
	if err != nil {
		return err
	}
	s.cache.Remove(ns)
	return nil
}

// Seed writes defaults for names that do not exist yet
func (s *Store) Seed(ctx context.Context, ns string, defaults Map) error {
	for name, value := range defaults {
		row := models.Setting{Namespace: ns, Name: name, Value: value}
		err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
		if err != nil {
			return err
		}
	}
	s.cache.Remove(ns)
	return nil
}

// Namespace reads through the store cache on each call
type Namespace struct {
	store *Store
	name  string
}

func (n *Namespace) Get(name string) string {
	return n.store.Load(context.Background(), n.name)[name]
}

func (n *Namespace) Lookup(name string) (string, bool) {
	return n.store.Load(context.Background(), n.name).Lookup(name)
}

func (n *Namespace) Bool(name string) bool { return parseBool(n.Get(name)) }

func (n *Namespace) Int(name string) int { return parseInt(n.Get(name)) }

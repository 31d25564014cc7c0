package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/webcraft-academy/elearn-api/internal/domain/entity"
	repo "github.com/webcraft-academy/elearn-api/internal/domain/repository"
	"github.com/webcraft-academy/elearn-api/pkg/helpers"
)

// CourseService owns the course catalog: CRUD, the cached public list,
// and Elasticsearch-backed search.
type CourseService struct {
	Repo      repo.CourseRepository
	Redis     *redis.Client
	ES        *elasticsearch.Client
	ESIndex   string
	GCS       *storage.Client
	GCSBucket string
	Logger    *logrus.Logger
	CacheTTL  time.Duration
}

func NewCourseService(r repo.CourseRepository, rdb *redis.Client, es *elasticsearch.Client, esIndex string, gcs *storage.Client, gcsBucket string, logger *logrus.Logger, cacheTTL time.Duration) *CourseService {
	return &CourseService{
		Repo:      r,
		Redis:     rdb,
		ES:        es,
		ESIndex:   esIndex,
		GCS:       gcs,
		GCSBucket: gcsBucket,
		Logger:    logger,
		CacheTTL:  cacheTTL,
	}
}

func courseListKey(category string) string {
	if category == "" {
		return "courses:list:all"
	}
	return "courses:list:" + category
}

type CourseInput struct {
	Title       string
	Description string
	Category    string
	Duration    string
	Charges     float64
	Status      string
}

// Create adds a course and uploads its cover image when one is given.
func (s *CourseService) Create(ctx context.Context, in CourseInput, image io.Reader, filename, contentType string) (*entity.Course, error) {
	if !entity.ValidCategory(in.Category) {
		return nil, ErrInvalidCategory
	}
	status := in.Status
	if status == "" {
		status = entity.CourseActive
	}

	c := &entity.Course{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Duration:    in.Duration,
		Charges:     in.Charges,
		Status:      status,
	}
	if image != nil {
		url, err := s.uploadImage(ctx, filename, contentType, image)
		if err != nil {
			return nil, err
		}
		c.ImageURL = url
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx, c.Category)
	s.indexCourse(ctx, c)
	return c, nil
}

func (s *CourseService) Get(ctx context.Context, id string) (*entity.Course, error) {
	c, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return c, nil
}

// List returns courses, optionally filtered to one category, through a
// short-lived Redis cache. The earnings aggregate is deliberately not
// cached the same way; only this hot public list is.
func (s *CourseService) List(ctx context.Context, category string) ([]*entity.Course, error) {
	if category != "" && !entity.ValidCategory(category) {
		return nil, ErrInvalidCategory
	}
	key := courseListKey(category)
	if s.Redis != nil {
		var cached []*entity.Course
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	courses, err := s.Repo.List(ctx, category)
	if err != nil {
		return nil, err
	}
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, key, courses, s.CacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("course list cache write failed")
		}
	}
	return courses, nil
}

// Update replaces the mutable fields of a course.
func (s *CourseService) Update(ctx context.Context, id string, in CourseInput) (*entity.Course, error) {
	if !entity.ValidCategory(in.Category) {
		return nil, ErrInvalidCategory
	}
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	oldCategory := c.Category

	c.Title = in.Title
	c.Description = in.Description
	c.Category = in.Category
	c.Duration = in.Duration
	c.Charges = in.Charges
	if in.Status != "" {
		c.Status = in.Status
	}
	if err := s.Repo.Update(ctx, c); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	s.invalidateCache(ctx, oldCategory, c.Category)
	s.indexCourse(ctx, c)
	return c, nil
}

// Delete removes the course from the catalog and the search index.
// Existing cart references stay behind and count as zero earnings.
func (s *CourseService) Delete(ctx context.Context, id string) error {
	c, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrCourseNotFound
		}
		return err
	}

	s.invalidateCache(ctx, c.Category)
	s.deindexCourse(ctx, id)
	return nil
}

// Search queries Elasticsearch over title, description and category.
// Returns an empty result when search is not configured.
func (s *CourseService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "description", "category"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

func (s *CourseService) invalidateCache(ctx context.Context, categories ...string) {
	if s.Redis == nil {
		return
	}
	keys := []string{courseListKey("")}
	for _, cat := range categories {
		keys = append(keys, courseListKey(cat))
	}
	if err := s.Redis.Del(ctx, keys...).Err(); err != nil && s.Logger != nil {
		s.Logger.WithError(err).Warn("course list cache invalidation failed")
	}
}

func (s *CourseService) indexCourse(ctx context.Context, c *entity.Course) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"id":          c.ID,
		"title":       c.Title,
		"description": c.Description,
		"category":    c.Category,
		"duration":    c.Duration,
		"charges":     c.Charges,
		"status":      c.Status,
		"created_at":  c.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: c.ID, Body: strings.NewReader(string(b)), Refresh: "false"}

	cctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(cctx, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("course_id", c.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("course_id", c.ID).Warn("es index response error")
	}
}

func (s *CourseService) deindexCourse(ctx context.Context, id string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}

	cctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(cctx, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("course_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

func (s *CourseService) uploadImage(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}
	id := uuid.NewString()
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("courses", id+ext))
	return helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
}

package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/go-redis/redis/v8"

	"portfolio-server-go/catalog"
	"portfolio-server-go/models"
)

const (
	studentsKey       = "students" // Set: Stores all student IDs
	studentInfoPrefix = "student:" // Hash prefix: student:{id} -> stores name and view
)

// RosterService handles the student roster stored in Redis
type RosterService struct {
	Client *redis.Client
	Ctx    context.Context // Base context
}

// NewRosterService creates a new RosterService instance
func NewRosterService(client *redis.Client) *RosterService {
	return &RosterService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// Helper to generate student info key
func getStudentInfoKey(studentID string) string {
	return studentInfoPrefix + studentID
}

// --- Student Operations ---

// AddStudent stores a student and the view their experiences live in
func (s *RosterService) AddStudent(student models.Student) error {
	id := catalog.NormalizeStudent(student.ID)
	if id == "" || student.View == "" {
		return errors.New("student ID and View cannot be empty")
	}
	name := student.Name
	if name == "" {
		name = id
	}

	pipe := s.Client.Pipeline()
	pipe.SAdd(s.Ctx, studentsKey, id)
	pipe.HSet(s.Ctx, getStudentInfoKey(id), map[string]interface{}{
		"id":   id,
		"name": name,
		"view": student.View,
	})

	if _, err := pipe.Exec(s.Ctx); err != nil {
		log.Printf("Error adding student %s: %v", id, err)
		return fmt.Errorf("failed to add student to Redis: %w", err)
	}
	return nil
}

// GetStudentByID retrieves a student by their ID, nil when unknown
func (s *RosterService) GetStudentByID(studentID string) (*models.Student, error) {
	data, err := s.Client.HGetAll(s.Ctx, getStudentInfoKey(catalog.NormalizeStudent(studentID))).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		log.Printf("Error getting student %s: %v", studentID, err)
		return nil, fmt.Errorf("failed to get student from Redis: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	return &models.Student{
		ID:   data["id"],
		Name: data["name"],
		View: data["view"],
	}, nil
}

// GetAllStudents retrieves every student on the roster, sorted by ID
func (s *RosterService) GetAllStudents() ([]models.Student, error) {
	ids, err := s.Client.SMembers(s.Ctx, studentsKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []models.Student{}, nil
		}
		log.Printf("Error getting all student IDs: %v", err)
		return nil, fmt.Errorf("failed to get student IDs from Redis: %w", err)
	}
	sort.Strings(ids)

	students := make([]models.Student, 0, len(ids))
	for _, id := range ids {
		student, err := s.GetStudentByID(id)
		if err != nil {
			// Log the error but continue trying to fetch others
			log.Printf("Error fetching details for student %s: %v", id, err)
			continue
		}
		if student != nil && student.View != "" {
			students = append(students, *student)
		}
	}
	return students, nil
}

// StudentCount returns the size of the roster set
func (s *RosterService) StudentCount() (int64, error) {
	count, err := s.Client.SCard(s.Ctx, studentsKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}
	return count, nil
}

// --- Seeding ---

// SeedIfEmpty adds the default roster when Redis holds no students yet.
// It reports whether seeding happened.
func (s *RosterService) SeedIfEmpty(defaults []models.Student) (bool, error) {
	count, err := s.StudentCount()
	if err != nil {
		return false, err
	}
	if count > 0 {
		log.Printf("Found existing roster in Redis (Key: '%s', count: %d). Skipping seed.", studentsKey, count)
		return false, nil
	}

	log.Printf("No roster found in Redis (Key: '%s'). Seeding %d students...", studentsKey, len(defaults))
	for _, student := range defaults {
		if err := s.AddStudent(student); err != nil {
			return false, fmt.Errorf("seed student %s: %w", student.ID, err)
		}
	}
	return true, nil
}

// LoadViewMap snapshots the roster into an immutable student to view map.
// It is read once at start-up; requests never go back to Redis.
func (s *RosterService) LoadViewMap() (catalog.StudentViewMap, error) {
	students, err := s.GetAllStudents()
	if err != nil {
		return catalog.StudentViewMap{}, err
	}
	return catalog.NewStudentViewMap(students), nil
}

// --- Utility ---

// InitializeRedisClient creates and tests a Redis client connection
func InitializeRedisClient(addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("could not connect to Redis at %s: %w", addr, err)
	}

	log.Printf("Successfully connected to Redis %s (DB %d)", addr, db)
	return rdb, nil
}

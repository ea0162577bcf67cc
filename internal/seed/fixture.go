// Package seed loads user fixtures into a storage backend.
package seed

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/user-directory/internal/apperr"
	"github.com/DjordjeVuckovic/user-directory/internal/domain"
	"gopkg.in/yaml.v3"
)

type Fixture struct {
	Users []FixtureUser `yaml:"users"`
}

// FixtureUser is one fixture entry. ID is optional; the backend assigns one when it is zero.
type FixtureUser struct {
	ID    int64  `yaml:"id,omitempty"`
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

type YAMLFixtureLoader struct {
	reader io.Reader
}

func NewYAMLFixtureLoader(reader io.Reader) *YAMLFixtureLoader {
	return &YAMLFixtureLoader{
		reader: reader,
	}
}

func (l *YAMLFixtureLoader) Load() (*Fixture, error) {
	decoder := yaml.NewDecoder(l.reader)
	decoder.KnownFields(true)

	var f Fixture
	if err := decoder.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, apperr.NewValidation("fixture is empty")
		}
		return nil, apperr.NewValidationWrap("failed to decode fixture", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// LoadFile reads and validates the fixture at path.
func LoadFile(path string) (*Fixture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture %s: %w", path, err)
	}
	defer file.Close()

	return NewYAMLFixtureLoader(file).Load()
}

func (f *Fixture) Validate() error {
	if len(f.Users) == 0 {
		return apperr.NewFieldValidation("users", "at least one user is required")
	}

	emails := make(map[string]int, len(f.Users))
	ids := make(map[int64]int, len(f.Users))
	for i, u := range f.Users {
		field := fmt.Sprintf("users[%d]", i)
		if strings.TrimSpace(u.Name) == "" {
			return apperr.NewFieldValidation(field+".name", "name is required")
		}
		if !strings.Contains(u.Email, "@") {
			return apperr.NewFieldValidation(field+".email", fmt.Sprintf("invalid email %q", u.Email))
		}
		if j, ok := emails[u.Email]; ok {
			return apperr.NewFieldValidation(field+".email", fmt.Sprintf("duplicates users[%d]", j))
		}
		emails[u.Email] = i

		if u.ID < 0 {
			return apperr.NewFieldValidation(field+".id", "id must be positive")
		}
		if u.ID > 0 {
			if j, ok := ids[u.ID]; ok {
				return apperr.NewFieldValidation(field+".id", fmt.Sprintf("duplicates users[%d]", j))
			}
			ids[u.ID] = i
		}
	}
	return nil
}

func (f *Fixture) DomainUsers() []domain.User {
	users := make([]domain.User, 0, len(f.Users))
	for _, u := range f.Users {
		users = append(users, domain.User{ID: u.ID, Name: u.Name, Email: u.Email})
	}
	return users
}

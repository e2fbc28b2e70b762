package mockapi

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"vitalog/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// mockUser pairs a profile with its stored password hash. The hash never
// leaves the store.
type mockUser struct {
	models.User
	passwordHash []byte
}

// memDB simulates a backend database. Water, sleep and activity collections
// are per-user; categories and custom items are process-wide shared state,
// matching the backend this mock stands in for.
type memDB struct {
	mu sync.Mutex

	users      []*mockUser
	nextUserID int

	water    map[string][]models.WaterRecord
	sleep    map[string][]models.SleepRecord
	activity map[string][]models.ActivityRecord

	categories  []models.Category
	nextCatID   int
	customItems map[string][]models.CustomItem
}

const tokenPrefix = "fake-token-"

// seedPassword is the fixture password of every seeded user. This is a test
// fixture convention, not an auth scheme.
const seedPassword = "password"

func newMemDB() *memDB {
	db := &memDB{
		nextUserID:  1,
		water:       make(map[string][]models.WaterRecord),
		sleep:       make(map[string][]models.SleepRecord),
		activity:    make(map[string][]models.ActivityRecord),
		customItems: make(map[string][]models.CustomItem),
		nextCatID:   1,
	}

	hash := mustHash(seedPassword)
	db.addUser(&mockUser{
		User:         models.User{Name: "alice", Age: 30, WeightKg: 60, HeightM: 1.65, Gender: models.GenderFemale},
		passwordHash: hash,
	})
	db.addUser(&mockUser{
		User:         models.User{Name: "bob", Age: 28, WeightKg: 75, HeightM: 1.80, Gender: models.GenderMale},
		passwordHash: hash,
	})

	db.addCategory("Food")
	db.addCategory("Medications")

	return db
}

// addUser assigns the next numeric ID and stores the user. Caller holds no
// lock during construction; runtime callers must hold db.mu.
func (db *memDB) addUser(u *mockUser) *mockUser {
	u.ID = strconv.Itoa(db.nextUserID)
	db.nextUserID++
	db.users = append(db.users, u)
	return u
}

func (db *memDB) userByName(name string) *mockUser {
	for _, u := range db.users {
		if u.Name == name {
			return u
		}
	}
	return nil
}

func (db *memDB) userByID(id string) *mockUser {
	for _, u := range db.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (db *memDB) addCategory(name string) models.Category {
	cat := models.Category{
		ID:           fmt.Sprintf("cat-%d", db.nextCatID),
		CategoryName: name,
	}
	db.nextCatID++
	db.categories = append(db.categories, cat)
	db.customItems[cat.ID] = nil
	return cat
}

func (db *memDB) categoryByName(name string) *models.Category {
	for i := range db.categories {
		if db.categories[i].CategoryName == name {
			return &db.categories[i]
		}
	}
	return nil
}

// tokenFor derives the deterministic mock token for a user ID.
func tokenFor(userID string) string {
	return tokenPrefix + userID
}

// userIDFromToken reverses tokenFor. An empty result means the token is not
// one of ours.
func userIDFromToken(token string) string {
	if !strings.HasPrefix(token, tokenPrefix) {
		return ""
	}
	return strings.TrimPrefix(token, tokenPrefix)
}

// mustHash is used for fixture seeding only. MinCost keeps client
// construction cheap in tests.
func mustHash(password string) []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return hash
}

package api

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fellowtravellers/apartments-api/internal/domain"
	"github.com/fellowtravellers/apartments-api/internal/store"
)

// In-memory fakes for the store interfaces. Setting forcedErr makes every
// operation fail with it, for exercising the 5xx paths.

type fakeListingStore struct {
	mu        sync.Mutex
	listings  map[primitive.ObjectID]*domain.Listing
	forcedErr error

	searchPattern string
}

func newFakeListingStore() *fakeListingStore {
	return &fakeListingStore{listings: map[primitive.ObjectID]*domain.Listing{}}
}

func (s *fakeListingStore) Create(ctx context.Context, listing *domain.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return s.forcedErr
	}
	stored := *listing
	stored.ID = primitive.NewObjectID()
	s.listings[stored.ID] = &stored
	return nil
}

func (s *fakeListingStore) List(ctx context.Context) ([]domain.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return nil, s.forcedErr
	}
	out := []domain.Listing{}
	for _, l := range s.listings {
		out = append(out, *l)
	}
	return out, nil
}

func (s *fakeListingStore) SearchByTitle(ctx context.Context, pattern string) ([]domain.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return nil, s.forcedErr
	}
	s.searchPattern = pattern
	out := []domain.Listing{}
	for _, l := range s.listings {
		if strings.Contains(l.Title, pattern) {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (s *fakeListingStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return nil, s.forcedErr
	}
	l, ok := s.listings[id]
	if !ok {
		return nil, store.ErrListingNotFound
	}
	copied := *l
	return &copied, nil
}

func (s *fakeListingStore) Delete(ctx context.Context, id primitive.ObjectID) (*store.DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return nil, s.forcedErr
	}
	if _, ok := s.listings[id]; !ok {
		return &store.DeleteResult{DeletedCount: 0}, nil
	}
	delete(s.listings, id)
	return &store.DeleteResult{DeletedCount: 1}, nil
}

var _ store.ListingStore = (*fakeListingStore)(nil)

type fakeBookingStore struct {
	mu        sync.Mutex
	bookings  map[primitive.ObjectID]*domain.Booking
	forcedErr error
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{bookings: map[primitive.ObjectID]*domain.Booking{}}
}

func (s *fakeBookingStore) Create(ctx context.Context, booking *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return s.forcedErr
	}
	stored := *booking
	stored.ID = primitive.NewObjectID()
	s.bookings[stored.ID] = &stored
	return nil
}

func (s *fakeBookingStore) List(ctx context.Context) ([]domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return nil, s.forcedErr
	}
	out := []domain.Booking{}
	for _, b := range s.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (s *fakeBookingStore) ListByEmail(ctx context.Context, email string) ([]domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return nil, s.forcedErr
	}
	out := []domain.Booking{}
	for _, b := range s.bookings {
		if b.Email == email {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *fakeBookingStore) Approve(ctx context.Context, id primitive.ObjectID) (*store.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return nil, s.forcedErr
	}
	b, ok := s.bookings[id]
	if !ok {
		return &store.UpdateResult{}, nil
	}
	result := &store.UpdateResult{MatchedCount: 1}
	if b.Status != domain.StatusApproved {
		b.Status = domain.StatusApproved
		result.ModifiedCount = 1
	}
	return result, nil
}

func (s *fakeBookingStore) Delete(ctx context.Context, id primitive.ObjectID) (*store.DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return nil, s.forcedErr
	}
	if _, ok := s.bookings[id]; !ok {
		return &store.DeleteResult{DeletedCount: 0}, nil
	}
	delete(s.bookings, id)
	return &store.DeleteResult{DeletedCount: 1}, nil
}

var _ store.BookingStore = (*fakeBookingStore)(nil)

type fakeReviewStore struct {
	mu        sync.Mutex
	reviews   []domain.Review
	forcedErr error
}

func (s *fakeReviewStore) Create(ctx context.Context, review *domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return s.forcedErr
	}
	stored := *review
	stored.ID = primitive.NewObjectID()
	s.reviews = append(s.reviews, stored)
	return nil
}

func (s *fakeReviewStore) List(ctx context.Context) ([]domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return nil, s.forcedErr
	}
	return append([]domain.Review{}, s.reviews...), nil
}

var _ store.ReviewStore = (*fakeReviewStore)(nil)

type fakeUserStore struct {
	mu        sync.Mutex
	users     []*domain.User
	forcedErr error

	promoteCalls int
}

func (s *fakeUserStore) Create(ctx context.Context, user *domain.User) (*store.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return nil, s.forcedErr
	}
	stored := *user
	stored.ID = primitive.NewObjectID()
	s.users = append(s.users, &stored)
	return &store.InsertResult{InsertedID: stored.ID}, nil
}

func (s *fakeUserStore) Upsert(ctx context.Context, user *domain.User) (*store.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return nil, s.forcedErr
	}
	for _, u := range s.users {
		if u.Email == user.Email {
			u.Role = user.Role
			u.Extra = user.Extra
			return &store.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	stored := *user
	stored.ID = primitive.NewObjectID()
	s.users = append(s.users, &stored)
	return &store.UpdateResult{UpsertedID: stored.ID}, nil
}

func (s *fakeUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return nil, s.forcedErr
	}
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (s *fakeUserStore) PromoteToAdmin(ctx context.Context, email string) (*store.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.promoteCalls++
	if s.forcedErr != nil {
		return nil, s.forcedErr
	}
	for _, u := range s.users {
		if u.Email == email {
			result := &store.UpdateResult{MatchedCount: 1}
			if u.Role != domain.RoleAdmin {
				u.Role = domain.RoleAdmin
				result.ModifiedCount = 1
			}
			return result, nil
		}
	}
	return &store.UpdateResult{}, nil
}

func (s *fakeUserStore) countByEmail(email string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, u := range s.users {
		if u.Email == email {
			n++
		}
	}
	return n
}

var _ store.UserStore = (*fakeUserStore)(nil)

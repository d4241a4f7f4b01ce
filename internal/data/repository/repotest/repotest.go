// Package repotest provides in-memory repository fakes for service and
// handler tests. They keep the same semantics as the SQL
// implementations: nil results for missing rows on reads, not-found
// errors for missing rows on update and delete, and display names
// assembled from the linked stores.
package repotest

import (
	"context"
	"fmt"
	"sync"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"

	"github.com/google/uuid"
)

// NewRepository wires a full set of fakes sharing one store.
func NewRepository() *repository.Repository {
	store := &store{
		users:    make(map[uuid.UUID]entity.User),
		students: make(map[uuid.UUID]entity.Student),
		tours:    make(map[uuid.UUID]entity.Tour),
		bookings: make(map[uuid.UUID]entity.Booking),
		payments: make(map[uuid.UUID]entity.Payment),
	}
	return &repository.Repository{
		User:    &UserRepo{store: store},
		Student: &StudentRepo{store: store},
		Tour:    &TourRepo{store: store},
		Booking: &BookingRepo{store: store},
		Payment: &PaymentRepo{store: store},
	}
}

type store struct {
	mu       sync.Mutex
	users    map[uuid.UUID]entity.User
	students map[uuid.UUID]entity.Student
	tours    map[uuid.UUID]entity.Tour
	bookings map[uuid.UUID]entity.Booking
	payments map[uuid.UUID]entity.Payment

	order []uuid.UUID
}

func (s *store) track(id uuid.UUID) {
	s.order = append(s.order, id)
}

func (s *store) untrack(id uuid.UUID) {
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

// ordered returns ids in insertion order filtered to the given set.
func (s *store) ordered(in func(uuid.UUID) bool) []uuid.UUID {
	var ids []uuid.UUID
	for _, id := range s.order {
		if in(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

type UserRepo struct {
	store *store

	// Err forces every call to fail with it when set.
	Err error
}

func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	if r.Err != nil {
		return r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.users[user.ID] = *user
	r.store.track(user.ID)
	return nil
}

func (r *UserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user, ok := r.store.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *UserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, user := range r.store.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	ids := r.store.ordered(func(id uuid.UUID) bool {
		_, ok := r.store.users[id]
		return ok
	})
	users := make([]*entity.User, 0, len(ids))
	for _, id := range ids {
		user := r.store.users[id]
		users = append(users, &user)
	}
	return users, nil
}

func (r *UserRepo) Update(_ context.Context, user *entity.User) error {
	if r.Err != nil {
		return r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.users[user.ID]; !ok {
		return fmt.Errorf("user %s not found", user.ID.String())
	}
	r.store.users[user.ID] = *user
	return nil
}

func (r *UserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.Err != nil {
		return r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.users[id]; !ok {
		return fmt.Errorf("user %s not found", id.String())
	}
	delete(r.store.users, id)
	r.store.untrack(id)
	return nil
}

type StudentRepo struct {
	store *store
	Err   error
}

func (r *StudentRepo) Create(_ context.Context, student *entity.Student) error {
	if r.Err != nil {
		return r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.students[student.ID] = *student
	r.store.track(student.ID)
	return nil
}

func (r *StudentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Student, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	student, ok := r.store.students[id]
	if !ok {
		return nil, nil
	}
	return &student, nil
}

func (r *StudentRepo) FindAll(_ context.Context) ([]*entity.Student, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	ids := r.store.ordered(func(id uuid.UUID) bool {
		_, ok := r.store.students[id]
		return ok
	})
	students := make([]*entity.Student, 0, len(ids))
	for _, id := range ids {
		student := r.store.students[id]
		students = append(students, &student)
	}
	return students, nil
}

func (r *StudentRepo) CountAll(_ context.Context) (int64, error) {
	if r.Err != nil {
		return 0, r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.students)), nil
}

func (r *StudentRepo) Update(_ context.Context, student *entity.Student) error {
	if r.Err != nil {
		return r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.students[student.ID]; !ok {
		return fmt.Errorf("student %s not found", student.ID.String())
	}
	r.store.students[student.ID] = *student
	return nil
}

func (r *StudentRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.Err != nil {
		return r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.students[id]; !ok {
		return fmt.Errorf("student %s not found", id.String())
	}
	delete(r.store.students, id)
	r.store.untrack(id)
	return nil
}

type TourRepo struct {
	store *store
	Err   error
}

func (r *TourRepo) Create(_ context.Context, tour *entity.Tour) error {
	if r.Err != nil {
		return r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.tours[tour.ID] = *tour
	r.store.track(tour.ID)
	return nil
}

func (r *TourRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Tour, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	tour, ok := r.store.tours[id]
	if !ok {
		return nil, nil
	}
	return &tour, nil
}

func (r *TourRepo) FindAll(_ context.Context) ([]*entity.Tour, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	ids := r.store.ordered(func(id uuid.UUID) bool {
		_, ok := r.store.tours[id]
		return ok
	})
	tours := make([]*entity.Tour, 0, len(ids))
	for _, id := range ids {
		tour := r.store.tours[id]
		tours = append(tours, &tour)
	}
	return tours, nil
}

func (r *TourRepo) CountAll(_ context.Context) (int64, error) {
	if r.Err != nil {
		return 0, r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.tours)), nil
}

func (r *TourRepo) Update(_ context.Context, tour *entity.Tour) error {
	if r.Err != nil {
		return r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.tours[tour.ID]; !ok {
		return fmt.Errorf("tour %s not found", tour.ID.String())
	}
	r.store.tours[tour.ID] = *tour
	return nil
}

func (r *TourRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.Err != nil {
		return r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.tours[id]; !ok {
		return fmt.Errorf("tour %s not found", id.String())
	}
	delete(r.store.tours, id)
	r.store.untrack(id)
	return nil
}

type BookingRepo struct {
	store *store
	Err   error
}

func (r *BookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	if r.Err != nil {
		return r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.bookings[booking.ID] = *booking
	r.store.track(booking.ID)
	return nil
}

func (r *BookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.BookingDetail, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	booking, ok := r.store.bookings[id]
	if !ok {
		return nil, nil
	}
	detail := r.detail(booking)
	return &detail, nil
}

func (r *BookingRepo) FindAll(_ context.Context) ([]*entity.BookingDetail, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return r.findWhere(func(entity.Booking) bool { return true }), nil
}

func (r *BookingRepo) FindByParentID(_ context.Context, parentID uuid.UUID) ([]*entity.BookingDetail, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return r.findWhere(func(b entity.Booking) bool { return b.ParentID == parentID }), nil
}

func (r *BookingRepo) Update(_ context.Context, booking *entity.Booking) error {
	if r.Err != nil {
		return r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	existing, ok := r.store.bookings[booking.ID]
	if !ok {
		return fmt.Errorf("booking %s not found", booking.ID.String())
	}
	updated := *booking
	// parent_id is immutable, same as the SQL update
	updated.ParentID = existing.ParentID
	r.store.bookings[booking.ID] = updated
	return nil
}

func (r *BookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.Err != nil {
		return r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.bookings[id]; !ok {
		return fmt.Errorf("booking %s not found", id.String())
	}
	delete(r.store.bookings, id)
	r.store.untrack(id)
	return nil
}

func (r *BookingRepo) findWhere(match func(entity.Booking) bool) []*entity.BookingDetail {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	ids := r.store.ordered(func(id uuid.UUID) bool {
		booking, ok := r.store.bookings[id]
		return ok && match(booking)
	})
	details := make([]*entity.BookingDetail, 0, len(ids))
	for _, id := range ids {
		detail := r.detail(r.store.bookings[id])
		details = append(details, &detail)
	}
	return details
}

func (r *BookingRepo) detail(booking entity.Booking) entity.BookingDetail {
	detail := entity.BookingDetail{Booking: booking}
	if student, ok := r.store.students[booking.StudentID]; ok {
		detail.StudentName = student.Name
	}
	if tour, ok := r.store.tours[booking.TourID]; ok {
		detail.TourTitle = tour.Title
	}
	if parent, ok := r.store.users[booking.ParentID]; ok {
		detail.ParentName = parent.Username
	}
	return detail
}

type PaymentRepo struct {
	store *store
	Err   error
}

func (r *PaymentRepo) Create(_ context.Context, payment *entity.Payment) error {
	if r.Err != nil {
		return r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.payments[payment.ID] = *payment
	r.store.track(payment.ID)
	return nil
}

func (r *PaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.PaymentDetail, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	payment, ok := r.store.payments[id]
	if !ok {
		return nil, nil
	}
	detail := r.detail(payment)
	return &detail, nil
}

func (r *PaymentRepo) FindAll(_ context.Context) ([]*entity.PaymentDetail, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	ids := r.store.ordered(func(id uuid.UUID) bool {
		_, ok := r.store.payments[id]
		return ok
	})
	details := make([]*entity.PaymentDetail, 0, len(ids))
	for _, id := range ids {
		detail := r.detail(r.store.payments[id])
		details = append(details, &detail)
	}
	return details, nil
}

func (r *PaymentRepo) CountAll(_ context.Context) (int64, error) {
	if r.Err != nil {
		return 0, r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.payments)), nil
}

func (r *PaymentRepo) Update(_ context.Context, payment *entity.Payment) error {
	if r.Err != nil {
		return r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.payments[payment.ID]; !ok {
		return fmt.Errorf("payment %s not found", payment.ID.String())
	}
	r.store.payments[payment.ID] = *payment
	return nil
}

func (r *PaymentRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.Err != nil {
		return r.Err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.payments[id]; !ok {
		return fmt.Errorf("payment %s not found", id.String())
	}
	delete(r.store.payments, id)
	r.store.untrack(id)
	return nil
}

func (r *PaymentRepo) detail(payment entity.Payment) entity.PaymentDetail {
	detail := entity.PaymentDetail{Payment: payment}
	if student, ok := r.store.students[payment.StudentID]; ok {
		detail.StudentName = student.Name
	}
	if payment.BookingID != nil {
		if booking, ok := r.store.bookings[*payment.BookingID]; ok {
			if parent, ok := r.store.users[booking.ParentID]; ok {
				name := parent.FirstName + " " + parent.LastName
				detail.ParentName = &name
			}
		}
	}
	return detail
}

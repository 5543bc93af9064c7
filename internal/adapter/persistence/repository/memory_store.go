package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"techassist/internal/domain/entities"
	"techassist/internal/usecase/interfaces"
)

// MemoryStore is the process-wide entity store: one mutex-guarded map per
// entity type with a monotonic id counter starting at 1. Ids are never
// reused and nothing except estimate items is ever deleted.
//
// This is the prototype storage layer; it holds no data across restarts.
// Construct one per process and inject it into the use cases.
type MemoryStore struct {
	mu sync.RWMutex

	users         map[int64]entities.User
	customers     map[int64]entities.Customer
	jobs          map[int64]entities.Job
	photos        map[int64]entities.Photo
	notes         map[int64]entities.Note
	materials     map[int64]entities.Material
	estimateItems map[int64]entities.EstimateItem
	estimates     map[int64]entities.Estimate
	payments      map[string]entities.Payment

	userID         int64
	customerID     int64
	jobID          int64
	photoID        int64
	noteID         int64
	materialID     int64
	estimateItemID int64
	estimateID     int64
}

var (
	_ interfaces.IUserRepository     = (*MemoryStore)(nil)
	_ interfaces.ICustomerRepository = (*MemoryStore)(nil)
	_ interfaces.IJobRepository      = (*MemoryStore)(nil)
	_ interfaces.IPhotoRepository    = (*MemoryStore)(nil)
	_ interfaces.INoteRepository     = (*MemoryStore)(nil)
	_ interfaces.IMaterialRepository = (*MemoryStore)(nil)
	_ interfaces.IEstimateRepository = (*MemoryStore)(nil)
	_ interfaces.IPaymentRepository  = (*MemoryStore)(nil)
)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:         make(map[int64]entities.User),
		customers:     make(map[int64]entities.Customer),
		jobs:          make(map[int64]entities.Job),
		photos:        make(map[int64]entities.Photo),
		notes:         make(map[int64]entities.Note),
		materials:     make(map[int64]entities.Material),
		estimateItems: make(map[int64]entities.EstimateItem),
		estimates:     make(map[int64]entities.Estimate),
		payments:      make(map[string]entities.Payment),
	}
}

// NewSeededMemoryStore returns a store preloaded with the demo data set: a
// default technician, one customer, a small material catalog and an
// in-progress job.
func NewSeededMemoryStore() *MemoryStore {
	s := NewMemoryStore()
	ctx := context.Background()

	tech, _ := s.CreateUser(ctx, entities.User{
		Username: "tech1",
		Password: "password123",
		Name:     "John Smith",
		Email:    "john@example.com",
		Phone:    "555-123-4567",
	})

	cust, _ := s.CreateCustomer(ctx, entities.Customer{
		Name:    "Grande Deluxe",
		Email:   "info@grandedeluxe.com",
		Phone:   "614-555-1234",
		Address: "123 Main St",
		City:    "Columbus",
		State:   "OH",
		Zip:     "43231",
	})

	_, _ = s.CreateMaterial(ctx, entities.Material{
		Name:         "Copper wiring",
		Description:  "10 ft copper wiring for electrical connections",
		Category:     "Electrical",
		DefaultPrice: 1250,
		Unit:         "each",
	})
	_, _ = s.CreateMaterial(ctx, entities.Material{
		Name:         "Light switch",
		Description:  "Standard wall light switch",
		Category:     "Electrical",
		DefaultPrice: 850,
		Unit:         "each",
	})

	scheduled := time.Now().UTC()
	_, _ = s.CreateJob(ctx, entities.Job{
		WorkOrderNumber: "252578",
		CustomerID:      cust.ID,
		TechnicianID:    tech.ID,
		Status:          entities.JobStatusInProgress,
		Description:     "Replace light switch with dimmer switch",
		Scheduled:       &scheduled,
		TimeZone:        "US/Eastern",
	})

	return s
}

// User operations

func (s *MemoryStore) CreateUser(_ context.Context, u entities.User) (entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID++
	u.ID = s.userID
	s.users[u.ID] = u
	return u, nil
}

func (s *MemoryStore) GetUser(_ context.Context, id int64) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users[id], nil
}

func (s *MemoryStore) GetUserByUsername(_ context.Context, username string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return entities.User{}, nil
}

// Customer operations

func (s *MemoryStore) CreateCustomer(_ context.Context, c entities.Customer) (entities.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customerID++
	c.ID = s.customerID
	s.customers[c.ID] = c
	return c, nil
}

func (s *MemoryStore) GetCustomer(_ context.Context, id int64) (entities.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.customers[id], nil
}

func (s *MemoryStore) ListCustomers(_ context.Context) ([]entities.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Job operations

func (s *MemoryStore) CreateJob(_ context.Context, j entities.Job) (entities.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobID++
	j.ID = s.jobID
	j.Created = time.Now().UTC()
	s.jobs[j.ID] = j
	return j, nil
}

func (s *MemoryStore) GetJob(_ context.Context, id int64) (entities.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.jobs[id], nil
}

func (s *MemoryStore) ListJobs(_ context.Context) ([]entities.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		out = append(out, j)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) ListJobsByTechnician(_ context.Context, technicianID int64) ([]entities.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Job, 0)
	for _, j := range s.jobs {
		if j.TechnicianID == technicianID {
			out = append(out, j)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) ListJobsByCustomer(_ context.Context, customerID int64) ([]entities.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Job, 0)
	for _, j := range s.jobs {
		if j.CustomerID == customerID {
			out = append(out, j)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) UpdateJobStatus(_ context.Context, id int64, status entities.JobStatus) (entities.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[id]
	if !ok {
		return entities.Job{}, nil
	}
	j.Status = status
	s.jobs[id] = j
	return j, nil
}

// Photo operations

func (s *MemoryStore) CreatePhoto(_ context.Context, p entities.Photo) (entities.Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.photoID++
	p.ID = s.photoID
	p.Timestamp = time.Now().UTC()
	p.AIAnalysis = nil
	s.photos[p.ID] = p
	return p, nil
}

func (s *MemoryStore) GetPhoto(_ context.Context, id int64) (entities.Photo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.photos[id], nil
}

func (s *MemoryStore) ListPhotosByJob(_ context.Context, jobID int64) ([]entities.Photo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Photo, 0)
	for _, p := range s.photos {
		if p.JobID == jobID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) UpdatePhotoAnalysis(_ context.Context, id int64, analysis entities.PhotoAnalysis) (entities.Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.photos[id]
	if !ok {
		return entities.Photo{}, nil
	}
	// Last write wins, no versioning.
	p.AIAnalysis = &analysis
	s.photos[id] = p
	return p, nil
}

// Note operations

func (s *MemoryStore) CreateNote(_ context.Context, n entities.Note) (entities.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.noteID++
	n.ID = s.noteID
	n.Timestamp = time.Now().UTC()
	n.EnhancedContent = ""
	s.notes[n.ID] = n
	return n, nil
}

func (s *MemoryStore) GetNote(_ context.Context, id int64) (entities.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.notes[id], nil
}

func (s *MemoryStore) ListNotesByJob(_ context.Context, jobID int64) ([]entities.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Note, 0)
	for _, n := range s.notes {
		if n.JobID == jobID {
			out = append(out, n)
		}
	}
	// Newest first; fall back to id for same-instant timestamps.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].ID > out[j].ID
		}
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

func (s *MemoryStore) UpdateNoteEnhancement(_ context.Context, id int64, enhancedContent string) (entities.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notes[id]
	if !ok {
		return entities.Note{}, nil
	}
	n.EnhancedContent = enhancedContent
	s.notes[id] = n
	return n, nil
}

// Material operations

func (s *MemoryStore) CreateMaterial(_ context.Context, m entities.Material) (entities.Material, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.materialID++
	m.ID = s.materialID
	s.materials[m.ID] = m
	return m, nil
}

func (s *MemoryStore) GetMaterial(_ context.Context, id int64) (entities.Material, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.materials[id], nil
}

func (s *MemoryStore) ListMaterials(_ context.Context) ([]entities.Material, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Material, 0, len(s.materials))
	for _, m := range s.materials {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Estimate operations

func (s *MemoryStore) CreateEstimate(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createEstimateLocked(e)
}

func (s *MemoryStore) createEstimateLocked(e entities.Estimate) (entities.Estimate, error) {
	for _, existing := range s.estimates {
		if existing.JobID == e.JobID {
			return entities.Estimate{}, interfaces.ErrDuplicateEstimate
		}
	}
	s.estimateID++
	e.ID = s.estimateID
	e.Created = time.Now().UTC()
	s.estimates[e.ID] = e
	return e, nil
}

func (s *MemoryStore) GetEstimate(_ context.Context, id int64) (entities.Estimate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.estimates[id], nil
}

func (s *MemoryStore) GetEstimateByJob(_ context.Context, jobID int64) (entities.Estimate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.estimates {
		if e.JobID == jobID {
			return e, nil
		}
	}
	return entities.Estimate{}, nil
}

func (s *MemoryStore) UpdateEstimateStatus(_ context.Context, id int64, status entities.EstimateStatus) (entities.Estimate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.estimates[id]
	if !ok {
		return entities.Estimate{}, nil
	}
	e.Status = status
	s.estimates[id] = e
	return e, nil
}

func (s *MemoryStore) UpdateEstimateTotal(_ context.Context, id int64, totalAmount int64) (entities.Estimate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.estimates[id]
	if !ok {
		return entities.Estimate{}, nil
	}
	e.TotalAmount = totalAmount
	s.estimates[id] = e
	return e, nil
}

// CreateEstimateWithItem writes the estimate and its first item under one
// lock acquisition: both writes land or neither does.
func (s *MemoryStore) CreateEstimateWithItem(_ context.Context, e entities.Estimate, item entities.EstimateItem) (entities.Estimate, entities.EstimateItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created, err := s.createEstimateLocked(e)
	if err != nil {
		return entities.Estimate{}, entities.EstimateItem{}, err
	}
	item.JobID = created.JobID
	s.estimateItemID++
	item.ID = s.estimateItemID
	s.estimateItems[item.ID] = item
	return created, item, nil
}

// Estimate item operations

func (s *MemoryStore) CreateEstimateItem(_ context.Context, item entities.EstimateItem) (entities.EstimateItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.estimateItemID++
	item.ID = s.estimateItemID
	s.estimateItems[item.ID] = item
	return item, nil
}

func (s *MemoryStore) GetEstimateItem(_ context.Context, id int64) (entities.EstimateItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.estimateItems[id], nil
}

func (s *MemoryStore) ListEstimateItemsByJob(_ context.Context, jobID int64) ([]entities.EstimateItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.EstimateItem, 0)
	for _, item := range s.estimateItems {
		if item.JobID == jobID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) UpdateEstimateItem(_ context.Context, item entities.EstimateItem) (entities.EstimateItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.estimateItems[item.ID]
	if !ok {
		return entities.EstimateItem{}, nil
	}
	if item.Description != "" {
		existing.Description = item.Description
	}
	if item.Quantity > 0 {
		existing.Quantity = item.Quantity
	}
	if item.UnitPrice >= 0 {
		existing.UnitPrice = item.UnitPrice
	}
	if item.StoreSource != "" {
		existing.StoreSource = item.StoreSource
	}
	s.estimateItems[item.ID] = existing
	return existing, nil
}

func (s *MemoryStore) DeleteEstimateItem(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.estimateItems[id]; !ok {
		return false, nil
	}
	delete(s.estimateItems, id)
	return true, nil
}

// Payment operations

func (s *MemoryStore) CreatePayment(_ context.Context, p entities.Payment) (entities.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments[p.ID] = p
	return p, nil
}

func (s *MemoryStore) ListPaymentsByEstimate(_ context.Context, estimateID int64) ([]entities.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Payment, 0)
	for _, p := range s.payments {
		if p.EstimateID == estimateID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

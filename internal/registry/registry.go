package registry

import (
	"fmt"
	"sync"
	"time"

	"cinema_rental/internal/model"
)

// Registry is the single owner of the four entity collections. All reads go
// through the accessor methods, all writes through the operations below; the
// collections themselves are never handed out. One RWMutex guards every
// operation so that an existence check and the mutation it protects are
// atomic with respect to concurrent HTTP requests.
//
// Collection order is insertion order and survives a save/load round trip.
type Registry struct {
	mu        sync.RWMutex
	cinemas   []*model.Cinema
	suppliers []*model.Supplier
	films     []*model.Film
	rentals   []*model.Rental

	// allowReclose controls whether CloseRental may overwrite the return
	// date of an already-closed rental (correction semantics) or must
	// reject it with ErrConflict.
	allowReclose bool
}

// New constructs an empty registry. allowReclose selects the re-close policy
// applied by CloseRental.
func New(allowReclose bool) *Registry {
	return &Registry{allowReclose: allowReclose}
}

// ----- read-only views -----

// Cinemas returns the cinema collection in insertion order. The slice is a
// copy; the entities are shared and edited through the Update operations.
func (r *Registry) Cinemas() []*model.Cinema {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Cinema, len(r.cinemas))
	copy(out, r.cinemas)
	return out
}

// Suppliers returns the supplier collection in insertion order.
func (r *Registry) Suppliers() []*model.Supplier {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Supplier, len(r.suppliers))
	copy(out, r.suppliers)
	return out
}

// Films returns the film collection in insertion order.
func (r *Registry) Films() []*model.Film {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Film, len(r.films))
	copy(out, r.films)
	return out
}

// Rentals returns the rental collection in insertion order.
func (r *Registry) Rentals() []*model.Rental {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Rental, len(r.rentals))
	copy(out, r.rentals)
	return out
}

// ----- admission -----

// AddCinema admits a cinema, assigning the next free identifier when the
// entity arrives without one.
func (r *Registry) AddCinema(c *model.Cinema) error {
	if c == nil {
		return fmt.Errorf("%w: cinema is nil", ErrInvalidInput)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID == 0 {
		c.ID = NextID(r.cinemas, func(x *model.Cinema) int { return x.ID })
	}
	r.cinemas = append(r.cinemas, c)
	return nil
}

// AddSupplier admits a supplier, assigning an identifier when unset.
func (r *Registry) AddSupplier(s *model.Supplier) error {
	if s == nil {
		return fmt.Errorf("%w: supplier is nil", ErrInvalidInput)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID == 0 {
		s.ID = NextID(r.suppliers, func(x *model.Supplier) int { return x.ID })
	}
	r.suppliers = append(r.suppliers, s)
	return nil
}

// AddFilm admits a film after resolving its supplier. The supplier must
// already exist; on success the film's SupplierID is set to the resolved
// supplier's id.
func (r *Registry) AddFilm(f *model.Film, supplierID int) error {
	if f == nil {
		return fmt.Errorf("%w: film is nil", ErrInvalidInput)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	supplier := r.findSupplier(supplierID)
	if supplier == nil {
		return ErrSupplierNotFound
	}
	f.SupplierID = supplier.ID
	if f.ID == 0 {
		f.ID = NextID(r.films, func(x *model.Film) int { return x.ID })
	}
	r.films = append(r.films, f)
	return nil
}

// CreateRental opens a rental agreement between a cinema and a film. Both
// foreign keys must resolve, the date range must be ordered and the payment
// non-negative. Dates are truncated to the day. The new rental starts with a
// zero penalty rate and is returned so the caller can configure it further.
func (r *Registry) CreateRental(cinemaID, filmID int, start, end time.Time, payment float64) (*model.Rental, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cinema := r.findCinema(cinemaID)
	if cinema == nil {
		return nil, ErrCinemaNotFound
	}
	film := r.findFilm(filmID)
	if film == nil {
		return nil, ErrFilmNotFound
	}
	startDay := model.DateOnly(start)
	endDay := model.DateOnly(end)
	if startDay.After(endDay) {
		return nil, fmt.Errorf("%w: start date is after end date", ErrInvalidInput)
	}
	if payment < 0 {
		return nil, fmt.Errorf("%w: payment cannot be negative", ErrInvalidInput)
	}

	rental := &model.Rental{
		ID:                NextID(r.rentals, func(x *model.Rental) int { return x.ID }),
		StartDate:         startDay,
		EndDate:           endDay,
		PaymentAmount:     payment,
		PenaltyRatePerDay: 0,
		CinemaID:          cinema.ID,
		FilmID:            film.ID,
		Cinema:            cinema,
		Film:              film,
	}
	r.rentals = append(r.rentals, rental)
	return rental, nil
}

// ----- rental lifecycle -----

// CloseRental records the actual return date on the identified rental. Date
// validation is delegated to the rental itself. When the re-close policy is
// strict, closing an already-closed rental fails with ErrConflict; otherwise
// the previous return date is overwritten.
func (r *Registry) CloseRental(rentalID int, returnDate time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rental := r.findRental(rentalID)
	if rental == nil {
		return ErrRentalNotFound
	}
	if !r.allowReclose && !rental.IsActive() {
		return fmt.Errorf("%w: rental %d is already closed", ErrConflict, rentalID)
	}
	if err := rental.Close(returnDate); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// GetActiveRentals returns every rental whose film has not been returned,
// in collection order.
func (r *Registry) GetActiveRentals() []*model.Rental {
	r.mu.RLock()
	defer r.mu.RUnlock()
	active := make([]*model.Rental, 0, len(r.rentals))
	for _, rental := range r.rentals {
		if rental.IsActive() {
			active = append(active, rental)
		}
	}
	return active
}

// ----- edit in place -----

// UpdateCinema applies an edit to the stored cinema under the write lock, so
// concurrent readers never serialize a half-applied edit. The edited entity
// is returned for the caller's response.
func (r *Registry) UpdateCinema(id int, apply func(*model.Cinema)) (*model.Cinema, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.findCinema(id)
	if c == nil {
		return nil, ErrCinemaNotFound
	}
	apply(c)
	return c, nil
}

// UpdateSupplier applies an edit to the stored supplier under the write lock.
func (r *Registry) UpdateSupplier(id int, apply func(*model.Supplier)) (*model.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.findSupplier(id)
	if s == nil {
		return nil, ErrSupplierNotFound
	}
	apply(s)
	return s, nil
}

// UpdateFilm applies an edit to the stored film under the write lock. The
// supplier the film belongs to after the edit must resolve; the foreign key
// is only rewritten once the edit itself has succeeded.
func (r *Registry) UpdateFilm(id, supplierID int, apply func(*model.Film) error) (*model.Film, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f := r.findFilm(id)
	if f == nil {
		return nil, ErrFilmNotFound
	}
	supplier := r.findSupplier(supplierID)
	if supplier == nil {
		return nil, ErrSupplierNotFound
	}
	if err := apply(f); err != nil {
		return nil, err
	}
	f.SupplierID = supplier.ID
	return f, nil
}

// SetPenaltyRate sets the daily penalty rate on the identified rental.
func (r *Registry) SetPenaltyRate(rentalID int, rate float64) (*model.Rental, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rental := r.findRental(rentalID)
	if rental == nil {
		return nil, ErrRentalNotFound
	}
	if rate < 0 {
		return nil, fmt.Errorf("%w: penalty rate cannot be negative", ErrInvalidInput)
	}
	rental.PenaltyRatePerDay = rate
	return rental, nil
}

// ----- removal -----

// RemoveCinema removes a cinema and cascades removal of every rental that
// references it, closed history included. The removal is blocked with
// ErrConflict while any active rental still references the cinema.
func (r *Registry) RemoveCinema(cinemaID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findCinema(cinemaID) == nil {
		return ErrCinemaNotFound
	}
	for _, rental := range r.rentals {
		if rental.CinemaID == cinemaID && rental.IsActive() {
			return fmt.Errorf("%w: cinema %d has active rentals", ErrConflict, cinemaID)
		}
	}
	r.cinemas = deleteWhere(r.cinemas, func(c *model.Cinema) bool { return c.ID == cinemaID })
	r.rentals = deleteWhere(r.rentals, func(x *model.Rental) bool { return x.CinemaID == cinemaID })
	return nil
}

// RemoveSupplier removes a supplier. There is no cascade: the removal is
// blocked with ErrConflict while any film still references the supplier, so
// a successfully removed supplier can have no dependents.
func (r *Registry) RemoveSupplier(supplierID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findSupplier(supplierID) == nil {
		return ErrSupplierNotFound
	}
	for _, film := range r.films {
		if film.SupplierID == supplierID {
			return fmt.Errorf("%w: supplier %d still has films", ErrConflict, supplierID)
		}
	}
	r.suppliers = deleteWhere(r.suppliers, func(s *model.Supplier) bool { return s.ID == supplierID })
	return nil
}

// RemoveFilm removes a film and cascades removal of every rental that
// references it, closed history included. Blocked with ErrConflict while an
// active rental references the film.
func (r *Registry) RemoveFilm(filmID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findFilm(filmID) == nil {
		return ErrFilmNotFound
	}
	for _, rental := range r.rentals {
		if rental.FilmID == filmID && rental.IsActive() {
			return fmt.Errorf("%w: film %d has active rentals", ErrConflict, filmID)
		}
	}
	r.films = deleteWhere(r.films, func(f *model.Film) bool { return f.ID == filmID })
	r.rentals = deleteWhere(r.rentals, func(x *model.Rental) bool { return x.FilmID == filmID })
	return nil
}

// RemoveRental deletes a rental unconditionally; rentals are leaf entities
// with no dependents.
func (r *Registry) RemoveRental(rentalID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findRental(rentalID) == nil {
		return ErrRentalNotFound
	}
	r.rentals = deleteWhere(r.rentals, func(x *model.Rental) bool { return x.ID == rentalID })
	return nil
}

// ----- lookups -----

// GetCinemaByID returns the cinema with the given id or ErrCinemaNotFound.
func (r *Registry) GetCinemaByID(id int) (*model.Cinema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c := r.findCinema(id); c != nil {
		return c, nil
	}
	return nil, ErrCinemaNotFound
}

// GetSupplierByID returns the supplier with the given id or ErrSupplierNotFound.
func (r *Registry) GetSupplierByID(id int) (*model.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s := r.findSupplier(id); s != nil {
		return s, nil
	}
	return nil, ErrSupplierNotFound
}

// GetFilmByID returns the film with the given id or ErrFilmNotFound.
func (r *Registry) GetFilmByID(id int) (*model.Film, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if f := r.findFilm(id); f != nil {
		return f, nil
	}
	return nil, ErrFilmNotFound
}

// GetRentalByID returns the rental with the given id or ErrRentalNotFound.
func (r *Registry) GetRentalByID(id int) (*model.Rental, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if x := r.findRental(id); x != nil {
		return x, nil
	}
	return nil, ErrRentalNotFound
}

// ----- bulk replace & rebinding -----

// RebindReferences resolves the transient Cinema/Film pointers of every
// rental from its stored foreign keys. Identifiers that no longer resolve
// leave the pointer nil; the display layer falls back to the raw id.
func (r *Registry) RebindReferences() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rebind()
}

// ReplaceAll atomically swaps in freshly loaded collections and rebuilds the
// rental back-references. Used by the persistence adapter after a load.
func (r *Registry) ReplaceAll(cinemas []*model.Cinema, suppliers []*model.Supplier, films []*model.Film, rentals []*model.Rental) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cinemas = append([]*model.Cinema(nil), cinemas...)
	r.suppliers = append([]*model.Supplier(nil), suppliers...)
	r.films = append([]*model.Film(nil), films...)
	r.rentals = append([]*model.Rental(nil), rentals...)
	r.rebind()
}

// rebind must be called with the write lock held.
func (r *Registry) rebind() {
	for _, rental := range r.rentals {
		rental.Cinema = r.findCinema(rental.CinemaID)
		rental.Film = r.findFilm(rental.FilmID)
	}
}

// ----- unexported linear scans; fine for catalog-sized collections -----

func (r *Registry) findCinema(id int) *model.Cinema {
	for _, c := range r.cinemas {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (r *Registry) findSupplier(id int) *model.Supplier {
	for _, s := range r.suppliers {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func (r *Registry) findFilm(id int) *model.Film {
	for _, f := range r.films {
		if f.ID == id {
			return f
		}
	}
	return nil
}

func (r *Registry) findRental(id int) *model.Rental {
	for _, x := range r.rentals {
		if x.ID == id {
			return x
		}
	}
	return nil
}

// deleteWhere removes every element matching the predicate, preserving the
// order of the remainder.
func deleteWhere[T any](items []T, match func(T) bool) []T {
	out := items[:0]
	for _, item := range items {
		if !match(item) {
			out = append(out, item)
		}
	}
	// Zero the tail so removed pointers do not linger in the backing array.
	for i := len(out); i < len(items); i++ {
		var zero T
		items[i] = zero
	}
	return out
}

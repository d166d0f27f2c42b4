package appstate

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/trolleywise/price-service/internal/catalog"
	"github.com/trolleywise/price-service/internal/persistence"
	"github.com/trolleywise/price-service/internal/pricing"
)

// DefaultListName is the list created implicitly the first time a product
// is added to the cart without an explicit list.
const DefaultListName = "My Shopping List"

// Store owns the root application state. It is constructed explicitly and
// passed to whatever needs it; there is no ambient singleton. Actions are
// applied one at a time, and every persisted branch change is pushed to the
// persistence collaborator as a one-way side effect outside the pure reducer.
type Store struct {
	mu    sync.Mutex
	state State
	ready bool

	persister persistence.Store
	logger    zerolog.Logger
	now       func() time.Time
}

// NewStore returns a Store that is not yet usable: Bootstrap must run first.
// Dispatch or Snapshot on an unbootstrapped store panics, to catch wiring
// mistakes immediately.
func NewStore(persister persistence.Store, logger zerolog.Logger) *Store {
	return &Store{
		state:     NewState(),
		persister: persister,
		logger:    logger.With().Str("component", "appstate").Logger(),
		now:       time.Now,
	}
}

// WithClock overrides the store's clock, for tests.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Bootstrap seeds the catalog and folds any previously persisted shopping
// lists, price alerts, and settings into state through the same action
// channel used at runtime. It runs once; calling it again is an error.
func (s *Store) Bootstrap(ctx context.Context, products []catalog.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready {
		return errors.New("appstate: store already bootstrapped")
	}

	start := time.Now()
	now := s.now()

	s.state = Reduce(s.state, SetLoading{Loading: true}, now)
	s.state = Reduce(s.state, SetProducts{Products: products}, now)

	var lists []ShoppingList
	if err := s.loadDoc(ctx, persistence.KeyShoppingLists, &lists); err != nil {
		return err
	}
	for _, l := range lists {
		s.state = Reduce(s.state, AddShoppingList{List: l}, now)
	}

	var alerts []PriceAlert
	if err := s.loadDoc(ctx, persistence.KeyPriceAlerts, &alerts); err != nil {
		return err
	}
	for _, a := range alerts {
		s.state = Reduce(s.state, AddPriceAlert{Alert: a}, now)
	}

	var saved AppSettings
	if err := s.loadDoc(ctx, persistence.KeySettings, &saved); err != nil {
		return err
	}
	if saved != (AppSettings{}) {
		s.state = Reduce(s.state, UpdateSettings{Patch: fullPatch(saved)}, now)
	}

	s.state = Reduce(s.state, SetLoading{Loading: false}, now)
	s.ready = true

	catalogSize.Set(float64(len(products)))
	bootstrapDuration.Observe(time.Since(start).Seconds())

	s.logger.Info().
		Int("products", len(products)).
		Int("shopping_lists", len(lists)).
		Int("price_alerts", len(alerts)).
		Msg("State store bootstrapped")
	return nil
}

func (s *Store) loadDoc(ctx context.Context, key string, out any) error {
	doc, err := s.persister.Load(ctx, key)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return nil
		}
		return err
	}
	if err := json.Unmarshal(doc, out); err != nil {
		// A corrupt document is dropped rather than blocking startup.
		s.logger.Warn().Err(err).Str("key", key).Msg("Discarding unreadable persisted document")
	}
	return nil
}

func fullPatch(a AppSettings) SettingsPatch {
	return SettingsPatch{
		Theme:         &a.Theme,
		Currency:      &a.Currency,
		Notifications: &a.Notifications,
		DefaultStore:  &a.DefaultStore,
		Postcode:      &a.Postcode,
	}
}

// Dispatch applies one action to completion before the next is accepted.
// Actions targeting missing ids are tolerated as no-ops but surfaced in
// logs and metrics rather than silently swallowed.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeReady()

	name := ActionName(a)
	if target, missing := missingTarget(s.state, a); missing {
		noopActions.WithLabelValues(name).Inc()
		s.logger.Debug().Str("action", name).Str("target", target).Msg("Action targeted a missing id, no-op")
	}

	s.state = Reduce(s.state, a, s.now())
	actionsApplied.WithLabelValues(name).Inc()

	s.persistAfter(a)
}

// Snapshot returns a copy of the current state. Collections are copied so
// callers can iterate without racing against later dispatches; snapshot
// values must be treated as read-only.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeReady()
	return cloneState(s.state)
}

// AddToDefaultList places an item on the "My Shopping List" list, creating
// it first when absent, and returns the list's id.
func (s *Store) AddToDefaultList(item ShoppingListItem) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeReady()

	now := s.now()
	list, ok := s.state.FindListByName(DefaultListName)
	if !ok {
		list = ShoppingList{
			ID:        "default-list",
			Name:      DefaultListName,
			Items:     []ShoppingListItem{},
			CreatedAt: now,
			UpdatedAt: now,
		}
		s.state = Reduce(s.state, AddShoppingList{List: list}, now)
		actionsApplied.WithLabelValues("add_shopping_list").Inc()
	}

	s.state = Reduce(s.state, AddToShoppingList{ListID: list.ID, Item: item}, now)
	actionsApplied.WithLabelValues("add_to_shopping_list").Inc()

	s.persistLists()
	return list.ID
}

// AddToList adds an item to the list with the given id and returns the
// updated list. The existence check and the mutation happen under one lock,
// so the list cannot vanish in between. ok is false when no such list exists.
func (s *Store) AddToList(listID string, item ShoppingListItem) (ShoppingList, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeReady()

	if _, ok := s.state.FindList(listID); !ok {
		noopActions.WithLabelValues("add_to_shopping_list").Inc()
		return ShoppingList{}, false
	}

	s.state = Reduce(s.state, AddToShoppingList{ListID: listID, Item: item}, s.now())
	actionsApplied.WithLabelValues("add_to_shopping_list").Inc()
	s.persistLists()

	list, _ := s.state.FindList(listID)
	return cloneList(list), true
}

// RemoveFromList removes a product line from the list with the given id and
// returns the updated list. ok is false when no such list exists.
func (s *Store) RemoveFromList(listID, productID string) (ShoppingList, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeReady()

	if _, ok := s.state.FindList(listID); !ok {
		noopActions.WithLabelValues("remove_from_shopping_list").Inc()
		return ShoppingList{}, false
	}

	s.state = Reduce(s.state, RemoveFromShoppingList{ListID: listID, ProductID: productID}, s.now())
	actionsApplied.WithLabelValues("remove_from_shopping_list").Inc()
	s.persistLists()

	list, _ := s.state.FindList(listID)
	return cloneList(list), true
}

func (s *Store) mustBeReady() {
	if !s.ready {
		panic("appstate: store accessed before Bootstrap")
	}
}

// missingTarget reports whether the action references a list or alert id
// that is not in state.
func missingTarget(st State, a Action) (string, bool) {
	switch act := a.(type) {
	case UpdateShoppingList:
		if _, ok := st.FindList(act.List.ID); !ok {
			return act.List.ID, true
		}
	case DeleteShoppingList:
		if _, ok := st.FindList(act.ListID); !ok {
			return act.ListID, true
		}
	case AddToShoppingList:
		if _, ok := st.FindList(act.ListID); !ok {
			return act.ListID, true
		}
	case RemoveFromShoppingList:
		if _, ok := st.FindList(act.ListID); !ok {
			return act.ListID, true
		}
	case RemovePriceAlert:
		for _, al := range st.PriceAlerts {
			if al.ID == act.AlertID {
				return "", false
			}
		}
		return act.AlertID, true
	}
	return "", false
}

// persistAfter pushes the branch an action changed to the persister.
// Persistence failures are logged and counted, never propagated: the
// in-memory state is already the source of truth for this session.
func (s *Store) persistAfter(a Action) {
	switch a.(type) {
	case AddShoppingList, UpdateShoppingList, DeleteShoppingList,
		AddToShoppingList, RemoveFromShoppingList:
		s.persistLists()
	case AddPriceAlert, RemovePriceAlert:
		s.saveDoc(persistence.KeyPriceAlerts, s.state.PriceAlerts)
	case UpdateSettings:
		s.saveDoc(persistence.KeySettings, s.state.Settings)
	}
}

func (s *Store) persistLists() {
	s.saveDoc(persistence.KeyShoppingLists, s.state.ShoppingLists)
}

func (s *Store) saveDoc(key string, v any) {
	doc, err := json.Marshal(v)
	if err != nil {
		persistErrors.WithLabelValues(key).Inc()
		s.logger.Error().Err(err).Str("key", key).Msg("Failed to marshal state for persistence")
		return
	}
	if err := s.persister.Save(context.Background(), key, doc); err != nil {
		persistErrors.WithLabelValues(key).Inc()
		s.logger.Error().Err(err).Str("key", key).Msg("Failed to persist state")
	}
}

func cloneState(st State) State {
	out := st

	out.Products = make([]catalog.Product, len(st.Products))
	for i, p := range st.Products {
		out.Products[i] = cloneProduct(p)
	}

	out.ShoppingLists = make([]ShoppingList, len(st.ShoppingLists))
	for i, l := range st.ShoppingLists {
		out.ShoppingLists[i] = cloneList(l)
	}

	out.PriceAlerts = make([]PriceAlert, len(st.PriceAlerts))
	copy(out.PriceAlerts, st.PriceAlerts)

	if st.SelectedProduct != nil {
		p := cloneProduct(*st.SelectedProduct)
		out.SelectedProduct = &p
	}
	return out
}

// cloneProduct copies the product's price slices so snapshot holders cannot
// reach back into owned state.
func cloneProduct(p catalog.Product) catalog.Product {
	prices := make([]pricing.StorePrice, len(p.Stores))
	copy(prices, p.Stores)
	p.Stores = prices

	history := make([]pricing.PriceHistoryEntry, len(p.PriceHistory))
	copy(history, p.PriceHistory)
	p.PriceHistory = history
	return p
}

func cloneList(l ShoppingList) ShoppingList {
	items := make([]ShoppingListItem, len(l.Items))
	copy(items, l.Items)
	l.Items = items
	return l
}

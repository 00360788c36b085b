// Package session holds the dashboard state: the loaded dataset, its date
// index, and the selected date. Every mutation recomputes the full view from
// scratch; nothing derived is cached across mutations. Dataset sizes are
// small, so simplicity wins over incremental updates.
package session

import (
	"errors"
	"strings"
	"sync"

	"goldboard/internal/dataset"
	"goldboard/internal/index"
	"goldboard/internal/metrics"
	"goldboard/internal/model"
)

// ErrEmptyDataset means the initial load produced zero records. The session
// is never constructed in that case; the caller reports the error and stops.
var ErrEmptyDataset = errors.New("dataset contains no records")

// Session is the single owner of the dataset and index for its lifetime.
// Only the current date mutates after construction. The logical event stream
// is serial, but the HTTP shell may deliver requests concurrently, so
// mutations and reads take the lock.
type Session struct {
	mu      sync.Mutex
	ds      *dataset.Dataset
	ix      index.Index
	current model.Date
}

// New builds a session over a loaded dataset, selecting the newest date.
func New(ds *dataset.Dataset) (*Session, error) {
	if ds.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	ix := index.Build(ds.Records())
	newest, _ := ix.Newest()
	return &Session{ds: ds, ix: ix, current: newest}, nil
}

// CurrentDate returns the selected date.
func (s *Session) CurrentDate() model.Date {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Index returns the session's date index.
func (s *Session) Index() index.Index {
	return s.ix
}

// Select sets the current date unconditionally. Membership in the index is
// deliberately not validated: callers either pass an index member or resolve
// through SelectNearest first. A non-member date yields an empty view.
func (s *Session) Select(d model.Date) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = d
}

// SelectNearest resolves d to the closest date with data and selects it,
// returning the resolved date.
func (s *Session) SelectNearest(d model.Date) (model.Date, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	nearest, err := s.ix.Nearest(d)
	if err != nil {
		return model.Date{}, err
	}
	s.current = nearest
	return nearest, nil
}

// Next moves to the adjacent older date. At the oldest date (or when the
// current date is not an index member) it is a no-op and returns false.
func (s *Session) Next() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	pos, ok := s.ix.Position(s.current)
	if !ok || pos >= s.ix.Len()-1 {
		return false
	}
	s.current = s.ix.At(pos + 1)
	return true
}

// Previous moves to the adjacent newer date; no-op at the newest.
func (s *Session) Previous() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	pos, ok := s.ix.Position(s.current)
	if !ok || pos <= 0 {
		return false
	}
	s.current = s.ix.At(pos - 1)
	return true
}

// View derives the full rendering bundle for the current date.
func (s *Session) View() model.View {
	return s.FilteredView("")
}

// FilteredView is View with the record list narrowed by a case-insensitive
// substring match on product code or name. The filter touches only the
// record list: current date, previous-period data, and the aggregate
// surfaces are computed over the unfiltered set, exactly as the table search
// behaves on the dashboard.
func (s *Session) FilteredView(query string) model.View {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.ds.ForDate(s.current)
	previous := s.ds.PreviousOf(s.ix, s.current)

	views := metrics.BuildRecordViews(current, previous)
	if query != "" {
		views = filterViews(views, query)
	}

	view := model.View{
		Date:            s.current,
		Records:         views,
		PreviousRecords: previous,
		TopBySell:       metrics.TopBySell(current, 5),
		Navigation:      s.navigation(),
	}

	if len(current) > 0 {
		// Aggregates cannot fail on a non-empty set.
		maxSell, _ := metrics.MaxSell(current)
		minBuy, _ := metrics.MinBuy(current)
		avgSpread, _ := metrics.AverageSpread(current)
		view.Summary = &model.Summary{
			MaxSell:       maxSell,
			MinBuy:        minBuy,
			AverageSpread: avgSpread,
		}

		widest, _ := metrics.WidestSpread(current)
		view.SpreadWarning = &model.SpreadWarning{
			ProductCode: widest.ProductCode,
			ProductName: widest.ProductName,
			Spread:      metrics.Spread(widest),
		}
	}

	return view
}

func (s *Session) navigation() model.Navigation {
	nav := model.Navigation{Position: -1, Total: s.ix.Len()}
	pos, ok := s.ix.Position(s.current)
	if !ok {
		return nav
	}
	nav.Position = pos
	nav.HasNext = pos < s.ix.Len()-1
	nav.HasPrevious = pos > 0
	return nav
}

func filterViews(views []model.RecordView, query string) []model.RecordView {
	q := strings.ToLower(query)
	out := make([]model.RecordView, 0, len(views))
	for _, v := range views {
		if strings.Contains(strings.ToLower(v.ProductCode), q) ||
			strings.Contains(strings.ToLower(v.ProductName), q) {
			out = append(out, v)
		}
	}
	return out
}

package serviceImp

import (
	"errors"
	"io"
	"strings"

	"graze/entities"
	repo "graze/pkg/entry/repository"
	"graze/pkg/entry/service"
	"graze/pkg/rotation"
	"graze/pkg/tabular"
)

type entrySvc struct{ r repo.EntryRepository }

func New(r repo.EntryRepository) service.EntryService { return &entrySvc{r} }

// rederive recomputes every derived field from the stored inputs and writes
// back only when something actually moved. Stored derived values are never
// trusted on their own.
func (s *entrySvc) rederive(uid string) ([]entities.Entry, error) {
	list, err := s.r.List(uid)
	if err != nil {
		return nil, err
	}
	start, err := s.r.SeasonStart(uid)
	if err != nil {
		return nil, err
	}
	derived := rotation.DeriveSchedule(list, start)

	var dirty []entities.Entry
	for i := range derived {
		if derived[i].ProposedSD != list[i].ProposedSD ||
			derived[i].StartDate != list[i].StartDate ||
			derived[i].EndDate != list[i].EndDate {
			dirty = append(dirty, derived[i])
		}
	}
	if err := s.r.SaveAll(dirty); err != nil {
		return nil, err
	}
	return derived, nil
}

func (s *entrySvc) List(uid string) ([]entities.Entry, error) { return s.rederive(uid) }

func (s *entrySvc) Create(uid string, e entities.Entry) (*entities.Entry, error) {
	list, err := s.r.List(uid)
	if err != nil {
		return nil, err
	}
	e.EntryID = 0
	e.UserID = uid
	e.Pos = len(list)
	if err := s.r.Create(&e); err != nil {
		return nil, err
	}
	derived, err := s.rederive(uid)
	if err != nil {
		return nil, err
	}
	return findEntry(derived, e.EntryID)
}

func (s *entrySvc) Patch(uid string, id uint, p service.EntryPatch) (*entities.Entry, error) {
	list, err := s.r.List(uid)
	if err != nil {
		return nil, err
	}
	start, err := s.r.SeasonStart(uid)
	if err != nil {
		return nil, err
	}
	before := rotation.Signature(list, start)

	idx := -1
	for i := range list {
		if list[i].EntryID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, errors.New("entry not found")
	}
	applyPatch(&list[idx], p)
	if err := s.r.Update(&list[idx]); err != nil {
		return nil, err
	}

	// name/notes/metric edits do not feed the schedule; skip the recompute
	if rotation.Signature(list, start) == before {
		list[idx].SlumpRisk = rotation.OverlapsWindow(list[idx].StartDate, list[idx].EndDate)
		return &list[idx], nil
	}
	derived, err := s.rederive(uid)
	if err != nil {
		return nil, err
	}
	return findEntry(derived, id)
}

func (s *entrySvc) Delete(uid string, id uint) error {
	if err := s.r.Delete(id, uid); err != nil {
		return err
	}
	if err := s.renumber(uid); err != nil {
		return err
	}
	_, err := s.rederive(uid)
	return err
}

func (s *entrySvc) Duplicate(uid string, id uint) (*entities.Entry, error) {
	src, err := s.r.FindByID(id, uid)
	if err != nil {
		return nil, err
	}
	list, err := s.r.List(uid)
	if err != nil {
		return nil, err
	}
	var shifted []entities.Entry
	for i := range list {
		if list[i].Pos > src.Pos {
			list[i].Pos++
			shifted = append(shifted, list[i])
		}
	}
	if err := s.r.SaveAll(shifted); err != nil {
		return nil, err
	}

	dup := *src
	dup.EntryID = 0
	dup.Pos = src.Pos + 1
	if err := s.r.Create(&dup); err != nil {
		return nil, err
	}
	derived, err := s.rederive(uid)
	if err != nil {
		return nil, err
	}
	return findEntry(derived, dup.EntryID)
}

func (s *entrySvc) Reorder(uid string, id uint, to int) error {
	list, err := s.r.List(uid)
	if err != nil {
		return err
	}
	from := -1
	for i := range list {
		if list[i].EntryID == id {
			from = i
			break
		}
	}
	if from < 0 {
		return errors.New("entry not found")
	}
	if to < 0 {
		to = 0
	}
	if to >= len(list) {
		to = len(list) - 1
	}

	moved := list[from]
	list = append(list[:from], list[from+1:]...)
	list = append(list[:to], append([]entities.Entry{moved}, list[to:]...)...)
	for i := range list {
		list[i].Pos = i
	}
	if err := s.r.SaveAll(list); err != nil {
		return err
	}
	_, err = s.rederive(uid)
	return err
}

func (s *entrySvc) SeasonStart(uid string) (string, error) { return s.r.SeasonStart(uid) }

func (s *entrySvc) SetSeasonStart(uid, start string) error {
	start = strings.TrimSpace(start)
	if t, ok := rotation.ParseDate(start); ok {
		start = rotation.FormatDate(t)
	}
	if err := s.r.SetSeasonStart(uid, start); err != nil {
		return err
	}
	_, err := s.rederive(uid)
	return err
}

// ImportCSV merges carried-over metric columns into the list by pasture
// name. Metrics never feed the schedule, so no re-derivation follows.
func (s *entrySvc) ImportCSV(uid string, r io.Reader) error {
	list, err := s.r.List(uid)
	if err != nil {
		return err
	}
	merged, err := tabular.MergeCSV(r, list)
	if err != nil {
		return err
	}
	var dirty []entities.Entry
	for i := range merged {
		if !metricsEqual(merged[i], list[i]) {
			dirty = append(dirty, merged[i])
		}
	}
	return s.r.SaveAll(dirty)
}

func (s *entrySvc) ExportXLSX(uid string, w io.Writer) error {
	derived, err := s.rederive(uid)
	if err != nil {
		return err
	}
	return tabular.ExportXLSX(w, derived)
}

func (s *entrySvc) renumber(uid string) error {
	list, err := s.r.List(uid)
	if err != nil {
		return err
	}
	var dirty []entities.Entry
	for i := range list {
		if list[i].Pos != i {
			list[i].Pos = i
			dirty = append(dirty, list[i])
		}
	}
	return s.r.SaveAll(dirty)
}

func applyPatch(e *entities.Entry, p service.EntryPatch) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Notes != nil {
		e.Notes = *p.Notes
	}
	if p.AreaAcres != nil {
		e.AreaAcres = *p.AreaAcres
	}
	if p.HerdSize != nil {
		e.HerdSize = *p.HerdSize
	}
	if p.GrazeDays != nil {
		e.GrazeDays = *p.GrazeDays
	}
	if p.PrevPlannedSD != nil {
		e.PrevPlannedSD = p.PrevPlannedSD
	}
	if p.PrevActualSD != nil {
		e.PrevActualSD = p.PrevActualSD
	}
	if p.EstimateA != nil {
		e.EstimateA = p.EstimateA
	}
	if p.EstimateB != nil {
		e.EstimateB = p.EstimateB
	}
}

func metricsEqual(a, b entities.Entry) bool {
	eq := func(x, y *float64) bool {
		if x == nil || y == nil {
			return x == y
		}
		return *x == *y
	}
	return eq(a.PrevPlannedSD, b.PrevPlannedSD) && eq(a.PrevActualSD, b.PrevActualSD) &&
		eq(a.EstimateA, b.EstimateA) && eq(a.EstimateB, b.EstimateB)
}

func findEntry(list []entities.Entry, id uint) (*entities.Entry, error) {
	for i := range list {
		if list[i].EntryID == id {
			return &list[i], nil
		}
	}
	return nil, errors.New("entry not found")
}

package serviceImp

import (
	"encoding/json"
	"time"

	"graze/entities"
	repo "graze/pkg/draft/repository"
	"graze/pkg/draft/service"
	entryrepo "graze/pkg/entry/repository"
	"graze/pkg/rotation"
)

type draftSvc struct {
	r       repo.DraftRepository
	entries entryrepo.EntryRepository
}

func New(r repo.DraftRepository, entries entryrepo.EntryRepository) service.DraftService {
	return &draftSvc{r: r, entries: entries}
}

func (s *draftSvc) Save(uid, label string) (*entities.Draft, error) {
	list, err := s.entries.List(uid)
	if err != nil {
		return nil, err
	}
	start, err := s.entries.SeasonStart(uid)
	if err != nil {
		return nil, err
	}

	year := time.Now().Year()
	if t, ok := rotation.ParseDate(start); ok {
		year = t.Year()
	}
	blob, err := json.Marshal(list)
	if err != nil {
		return nil, err
	}
	d := &entities.Draft{
		UserID:      uid,
		Year:        year,
		Label:       label,
		SeasonStart: start,
		EntriesJSON: string(blob),
	}
	if err := s.r.Create(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *draftSvc) ListByYear(uid string) (map[int][]entities.Draft, error) {
	all, err := s.r.List(uid)
	if err != nil {
		return nil, err
	}
	out := map[int][]entities.Draft{}
	for _, d := range all {
		out[d.Year] = append(out[d.Year], d)
	}
	return out, nil
}

// Load swaps the working list for the snapshot. Entry identities are
// reassigned so nothing restored collides with ids a client may still hold.
func (s *draftSvc) Load(uid string, draftID uint) error {
	d, err := s.r.FindByID(draftID, uid)
	if err != nil {
		return err
	}
	var snap []entities.Entry
	if err := json.Unmarshal([]byte(d.EntriesJSON), &snap); err != nil {
		return err
	}

	restored := rotation.DeriveSchedule(snap, d.SeasonStart)
	for i := range restored {
		restored[i].EntryID = 0
		restored[i].UserID = uid
		restored[i].Pos = i
	}
	if err := s.entries.ReplaceAll(uid, restored); err != nil {
		return err
	}
	return s.entries.SetSeasonStart(uid, d.SeasonStart)
}

func (s *draftSvc) Delete(uid string, draftID uint) error { return s.r.Delete(draftID, uid) }

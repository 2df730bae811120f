package service

import (
	"context"
	"strings"
	"testing"

	perr "reclaim/internal/platform/errors"
	"reclaim/internal/services/api/stats/domain"
	"reclaim/internal/services/api/stats/repo"
)

type fakeRepo struct {
	hid        string
	start, end string
	weekly     []repo.WeeklyRow
	moods      []repo.MoodsRow
	slots      []repo.SlotsRow
}

func (f *fakeRepo) Weekly(_ context.Context, hid, start, end string) ([]repo.WeeklyRow, error) {
	f.hid, f.start, f.end = hid, start, end
	return f.weekly, nil
}

func (f *fakeRepo) Moods(_ context.Context, hid, start, end string) ([]repo.MoodsRow, error) {
	f.hid, f.start, f.end = hid, start, end
	return f.moods, nil
}

func (f *fakeRepo) Slots(_ context.Context, hid, start, end string) ([]repo.SlotsRow, error) {
	f.hid, f.start, f.end = hid, start, end
	return f.slots, nil
}

func window(start, end string) domain.TimeRange {
	return domain.TimeRange{Start: start, End: end}
}

func TestWeekly_HashesUserAndMaps(t *testing.T) {
	t.Parallel()

	f := &fakeRepo{weekly: []repo.WeeklyRow{{Day: "2026-09-14", Hours: 2.5, Entries: 3, Relapses: 1}}}
	s := New(f)

	got, err := s.Weekly(context.Background(), "u-1", domain.WeeklyInput{Range: window("2026-09-08", "2026-09-14")})
	if err != nil {
		t.Fatalf("Weekly: %v", err)
	}
	if len(got) != 1 || got[0].Day != "2026-09-14" || got[0].Relapses != 1 {
		t.Fatalf("rows = %+v", got)
	}
	if f.hid == "u-1" || strings.Contains(f.hid, "u-1") {
		t.Fatalf("raw user id reached analytics query: %q", f.hid)
	}
	if len(f.hid) != 32 {
		t.Fatalf("hid length = %d, want 32", len(f.hid))
	}
	if f.start != "2026-09-08" || f.end != "2026-09-14" {
		t.Fatalf("window = %s..%s", f.start, f.end)
	}
}

func TestWeekly_RejectsInvertedRange(t *testing.T) {
	t.Parallel()

	s := New(&fakeRepo{})
	_, err := s.Weekly(context.Background(), "u-1", domain.WeeklyInput{Range: window("2026-09-14", "2026-09-01")})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("err = %v, want invalid argument", err)
	}
}

func TestMoods_SameUserSameHash(t *testing.T) {
	t.Parallel()

	f := &fakeRepo{moods: []repo.MoodsRow{{Mood: "okay", Entries: 9}}}
	s := New(f)

	if _, err := s.Moods(context.Background(), "u-1", domain.MoodsInput{Range: window("2026-09-01", "2026-09-30")}); err != nil {
		t.Fatalf("Moods: %v", err)
	}
	first := f.hid
	if _, err := s.Slots(context.Background(), "u-1", domain.SlotsInput{Range: window("2026-09-01", "2026-09-30")}); err != nil {
		t.Fatalf("Slots: %v", err)
	}
	if f.hid != first {
		t.Fatalf("hash not stable: %q vs %q", first, f.hid)
	}
}

func TestSlots_Maps(t *testing.T) {
	t.Parallel()

	f := &fakeRepo{slots: []repo.SlotsRow{{Slot: "evening", Entries: 12, Hours: 8.5}}}
	s := New(f)

	got, err := s.Slots(context.Background(), "u-1", domain.SlotsInput{Range: window("2026-09-01", "2026-09-30")})
	if err != nil {
		t.Fatalf("Slots: %v", err)
	}
	if len(got) != 1 || got[0].Slot != "evening" || got[0].Hours != 8.5 {
		t.Fatalf("rows = %+v", got)
	}
}

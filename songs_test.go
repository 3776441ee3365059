package synthmeta_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/pianoware/synthmeta"
)

func TestSongs_Decode(t *testing.T) {
	const input = `<SynthesiaMetadata Version="1">
  <Songs>
    <Song UniqueId="s1" Title="Prelude" Subtitle="in C" Composer="Bach" Arranger="None"
          Copyright="PD" License="CC0" Rating="5" Difficulty="30"
          FingerHints="blob1" HandParts="blob2" Tags="baroque;easy"/>
  </Songs>
</SynthesiaMetadata>`

	doc := mustLoad(t, input)
	songs := slices.Collect(doc.Songs())
	if len(songs) != 1 {
		t.Fatalf("got %d songs, want 1", len(songs))
	}

	s := songs[0]
	if s.UniqueID != "s1" || s.Title != "Prelude" || s.Subtitle != "in C" ||
		s.Composer != "Bach" || s.Arranger != "None" || s.Copyright != "PD" ||
		s.License != "CC0" || s.FingerHints != "blob1" || s.HandParts != "blob2" {
		t.Errorf("string fields wrong: %+v", s)
	}
	if s.Rating == nil || *s.Rating != 5 {
		t.Errorf("Rating = %v, want 5", s.Rating)
	}
	if s.Difficulty == nil || *s.Difficulty != 30 {
		t.Errorf("Difficulty = %v, want 30", s.Difficulty)
	}
	if !slices.Equal(s.Tags, []string{"baroque", "easy"}) {
		t.Errorf("Tags = %v, want [baroque easy]", s.Tags)
	}
}

func TestSongs_AbsentFieldsStayDefault(t *testing.T) {
	doc := mustLoad(t, `<SynthesiaMetadata Version="1"><Songs><Song UniqueId="s1"/></Songs></SynthesiaMetadata>`)

	songs := slices.Collect(doc.Songs())
	if len(songs) != 1 {
		t.Fatalf("got %d songs, want 1", len(songs))
	}
	s := songs[0]
	if s.Title != "" || s.Rating != nil || s.Difficulty != nil || s.Tags != nil {
		t.Errorf("absent fields not at defaults: %+v", s)
	}
}

func TestSongs_BadIntegerIsNotFatal(t *testing.T) {
	doc := mustLoad(t, `<SynthesiaMetadata Version="1"><Songs><Song UniqueId="s1" Rating="five" Difficulty="30"/></Songs></SynthesiaMetadata>`)

	songs := slices.Collect(doc.Songs())
	if len(songs) != 1 {
		t.Fatalf("record with bad rating was dropped; got %d songs", len(songs))
	}
	if songs[0].Rating != nil {
		t.Errorf("Rating = %v, want nil for unparseable value", songs[0].Rating)
	}
	if songs[0].Difficulty == nil || *songs[0].Difficulty != 30 {
		t.Errorf("Difficulty = %v, want 30", songs[0].Difficulty)
	}
}

func TestSongs_TagsDropEmptySegments(t *testing.T) {
	doc := mustLoad(t, `<SynthesiaMetadata Version="1"><Songs><Song UniqueId="s1" Tags="a;;b;"/></Songs></SynthesiaMetadata>`)

	songs := slices.Collect(doc.Songs())
	if !slices.Equal(songs[0].Tags, []string{"a", "b"}) {
		t.Errorf("Tags = %v, want [a b]", songs[0].Tags)
	}
}

func TestSongs_Restartable(t *testing.T) {
	doc := mustLoad(t, sampleDoc)

	seq := doc.Songs()
	first := len(slices.Collect(seq))
	second := len(slices.Collect(seq))
	if first != 2 || second != 2 {
		t.Errorf("iteration counts = %d, %d; want 2, 2", first, second)
	}

	// Mutations made between iterations are visible.
	if err := doc.AddSong(synthmeta.SongEntry{UniqueID: "s3"}); err != nil {
		t.Fatal(err)
	}
	if got := len(slices.Collect(seq)); got != 3 {
		t.Errorf("post-mutation iteration count = %d, want 3", got)
	}
}

func TestAddSong_TagsRoundTrip(t *testing.T) {
	doc := synthmeta.New()
	if err := doc.AddSong(synthmeta.SongEntry{UniqueID: "s1", Tags: []string{"a", "b"}}); err != nil {
		t.Fatal(err)
	}

	reloaded := mustLoad(t, writeToString(t, doc))
	songs := slices.Collect(reloaded.Songs())
	if !slices.Equal(songs[0].Tags, []string{"a", "b"}) {
		t.Errorf("Tags after round trip = %v, want [a b]", songs[0].Tags)
	}
}

func TestAddSong_UpsertIdempotent(t *testing.T) {
	rating := 4
	entry := synthmeta.SongEntry{
		UniqueID: "s1",
		Title:    "Prelude",
		Rating:   &rating,
		Tags:     []string{"baroque"},
	}

	doc := synthmeta.New()
	if err := doc.AddSong(entry); err != nil {
		t.Fatal(err)
	}
	if err := doc.AddSong(entry); err != nil {
		t.Fatal(err)
	}

	songs := slices.Collect(doc.Songs())
	if len(songs) != 1 {
		t.Fatalf("got %d records, want exactly 1", len(songs))
	}
	if !songs[0].Equal(entry) {
		t.Errorf("record = %+v, want %+v", songs[0], entry)
	}
}

func TestAddSong_OverwritesInPlace(t *testing.T) {
	doc := synthmeta.New()
	rating := 2
	if err := doc.AddSong(synthmeta.SongEntry{UniqueID: "s1", Title: "Old", Rating: &rating}); err != nil {
		t.Fatal(err)
	}
	if err := doc.AddSong(synthmeta.SongEntry{UniqueID: "s2", Title: "Other"}); err != nil {
		t.Fatal(err)
	}

	// Overwrite s1 with fewer fields: Title changes, Rating is removed.
	if err := doc.AddSong(synthmeta.SongEntry{UniqueID: "s1", Title: "New"}); err != nil {
		t.Fatal(err)
	}

	songs := slices.Collect(doc.Songs())
	if len(songs) != 2 {
		t.Fatalf("got %d records, want 2", len(songs))
	}
	// Position preserved: s1 is still first.
	if songs[0].UniqueID != "s1" || songs[0].Title != "New" {
		t.Errorf("songs[0] = %+v, want updated s1 first", songs[0])
	}
	if songs[0].Rating != nil {
		t.Errorf("Rating = %v, want nil after overwrite without rating", songs[0].Rating)
	}
}

func TestAddSong_EmptyID(t *testing.T) {
	doc := synthmeta.New()
	err := doc.AddSong(synthmeta.SongEntry{Title: "No ID"})
	if err == nil {
		t.Fatal("expected error for empty UniqueId")
	}
	var argErr *synthmeta.InvalidArgumentError
	if !errors.As(err, &argErr) {
		t.Errorf("expected *InvalidArgumentError, got %T: %v", err, err)
	}
	if got := len(slices.Collect(doc.Songs())); got != 0 {
		t.Errorf("document modified by rejected AddSong: %d records", got)
	}
}

func TestSetSongs_AdditiveReplace(t *testing.T) {
	doc := mustLoad(t, sampleDoc)

	err := doc.SetSongs(slices.Values([]synthmeta.SongEntry{
		{UniqueID: "s2", Title: "Gymnopedie (renamed)"},
		{UniqueID: "s9", Title: "Brand New"},
	}))
	if err != nil {
		t.Fatalf("SetSongs() error = %v", err)
	}

	var ids []string
	for song := range doc.Songs() {
		ids = append(ids, song.UniqueID)
	}
	// s1 survives: additive replace does not clear absent records.
	if !slices.Equal(ids, []string{"s1", "s2", "s9"}) {
		t.Errorf("ids = %v, want [s1 s2 s9]", ids)
	}

	s2, ok := doc.FindSong("s2")
	if !ok || s2.Title != "Gymnopedie (renamed)" {
		t.Errorf("s2 = %+v, want renamed title", s2)
	}
}

func TestSetSongs_ValidatesBeforeMutating(t *testing.T) {
	doc := synthmeta.New()

	err := doc.SetSongs(slices.Values([]synthmeta.SongEntry{
		{UniqueID: "ok"},
		{Title: "missing id"},
	}))
	if err == nil {
		t.Fatal("expected error for entry with empty UniqueId")
	}
	var argErr *synthmeta.InvalidArgumentError
	if !errors.As(err, &argErr) {
		t.Errorf("expected *InvalidArgumentError, got %T: %v", err, err)
	}
	if got := len(slices.Collect(doc.Songs())); got != 0 {
		t.Errorf("document modified by rejected SetSongs: %d records", got)
	}
}

func TestSetSongs_FromAnotherDocument(t *testing.T) {
	src := mustLoad(t, sampleDoc)
	dst := synthmeta.New()

	if err := dst.SetSongs(src.Songs()); err != nil {
		t.Fatalf("SetSongs() error = %v", err)
	}
	if got := len(slices.Collect(dst.Songs())); got != 2 {
		t.Errorf("got %d records, want 2", got)
	}
}

func TestRemoveSong(t *testing.T) {
	doc := mustLoad(t, sampleDoc)

	doc.RemoveSong("s1")

	var ids []string
	for song := range doc.Songs() {
		ids = append(ids, song.UniqueID)
	}
	if !slices.Equal(ids, []string{"s2"}) {
		t.Errorf("ids = %v, want [s2]", ids)
	}

	// Group references to s1 stay: weak references never cascade.
	out := writeToString(t, doc)
	if !strings.Contains(out, `<Song UniqueId="s1"/>`) {
		t.Errorf("group reference to removed song was dropped:\n%s", out)
	}
}

func TestRemoveSong_NoOps(t *testing.T) {
	doc := mustLoad(t, sampleDoc)
	before := writeToString(t, doc)

	doc.RemoveSong("")
	doc.RemoveSong("nope")

	if after := writeToString(t, doc); after != before {
		t.Error("no-op removals modified the document")
	}

	// No Songs container at all.
	empty := synthmeta.New()
	empty.RemoveSong("s1")
	if got := len(slices.Collect(empty.Songs())); got != 0 {
		t.Errorf("got %d records, want 0", got)
	}
}

func TestFindSong(t *testing.T) {
	doc := mustLoad(t, sampleDoc)

	song, ok := doc.FindSong("s2")
	if !ok {
		t.Fatal("FindSong(s2) not found")
	}
	if song.Title != "Gymnopedie No. 1" {
		t.Errorf("Title = %q, want %q", song.Title, "Gymnopedie No. 1")
	}

	if _, ok := doc.FindSong("nope"); ok {
		t.Error("FindSong(nope) = found, want not found")
	}
	if _, ok := doc.FindSong(""); ok {
		t.Error("FindSong(\"\") = found, want not found")
	}
}

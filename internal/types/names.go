package types

// Element and attribute names of the Synthesia metadata format.
//
// These are the only names the model owns. Everything else found in a
// document is foreign content and is carried through load and save
// untouched.
const (
	RootTag       = "SynthesiaMetadata"
	VersionAttr   = "Version"
	FormatVersion = "1"

	SongsTag = "Songs"
	SongTag  = "Song"

	GroupsTag = "Groups"
	GroupTag  = "Group"
	NameAttr  = "Name"

	UniqueIDAttr    = "UniqueId"
	TitleAttr       = "Title"
	SubtitleAttr    = "Subtitle"
	ComposerAttr    = "Composer"
	ArrangerAttr    = "Arranger"
	CopyrightAttr   = "Copyright"
	LicenseAttr     = "License"
	RatingAttr      = "Rating"
	DifficultyAttr  = "Difficulty"
	FingerHintsAttr = "FingerHints"
	HandPartsAttr   = "HandParts"
	TagsAttr        = "Tags"
)

// TagSeparator joins and splits the Tags attribute. A literal ";" inside
// a tag is not escaped; this matches the file format, which has no escape
// syntax for it.
const TagSeparator = ";"

// Package songxml converts between SongEntry values and Song elements in
// the underlying document tree.
//
// Decoding is lenient: absent attributes leave fields at their defaults
// and unparseable integers leave the pointer nil, with no error surfaced
// and no record dropped. Encoding writes recognized attributes only and
// leaves anything else on the element untouched.
package songxml

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/pianoware/synthmeta/internal/types"
)

// Decode reads a Song element into a SongEntry.
func Decode(el *etree.Element) types.SongEntry {
	s := types.SongEntry{
		UniqueID:    el.SelectAttrValue(types.UniqueIDAttr, ""),
		Title:       el.SelectAttrValue(types.TitleAttr, ""),
		Subtitle:    el.SelectAttrValue(types.SubtitleAttr, ""),
		Composer:    el.SelectAttrValue(types.ComposerAttr, ""),
		Arranger:    el.SelectAttrValue(types.ArrangerAttr, ""),
		Copyright:   el.SelectAttrValue(types.CopyrightAttr, ""),
		License:     el.SelectAttrValue(types.LicenseAttr, ""),
		FingerHints: el.SelectAttrValue(types.FingerHintsAttr, ""),
		HandParts:   el.SelectAttrValue(types.HandPartsAttr, ""),
	}
	s.Rating = decodeInt(el, types.RatingAttr)
	s.Difficulty = decodeInt(el, types.DifficultyAttr)
	if attr := el.SelectAttr(types.TagsAttr); attr != nil {
		s.Tags = SplitTags(attr.Value)
	}
	return s
}

// decodeInt parses an optional integer attribute. Absent or unparseable
// values yield nil, never an error.
func decodeInt(el *etree.Element, key string) *int {
	attr := el.SelectAttr(key)
	if attr == nil {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(attr.Value))
	if err != nil {
		return nil
	}
	return &v
}

// Encode writes the entry's fields onto a Song element, overwriting the
// recognized attributes in place. Empty string fields, nil integers, and
// an empty tag list remove their attribute rather than writing "".
// Attributes the model does not own are left alone.
func Encode(el *etree.Element, s types.SongEntry) {
	el.CreateAttr(types.UniqueIDAttr, s.UniqueID)
	setOrRemove(el, types.TitleAttr, s.Title)
	setOrRemove(el, types.SubtitleAttr, s.Subtitle)
	setOrRemove(el, types.ComposerAttr, s.Composer)
	setOrRemove(el, types.ArrangerAttr, s.Arranger)
	setOrRemove(el, types.CopyrightAttr, s.Copyright)
	setOrRemove(el, types.LicenseAttr, s.License)
	setOrRemoveInt(el, types.RatingAttr, s.Rating)
	setOrRemoveInt(el, types.DifficultyAttr, s.Difficulty)
	setOrRemove(el, types.FingerHintsAttr, s.FingerHints)
	setOrRemove(el, types.HandPartsAttr, s.HandParts)
	if len(s.Tags) == 0 {
		el.RemoveAttr(types.TagsAttr)
	} else {
		el.CreateAttr(types.TagsAttr, JoinTags(s.Tags))
	}
}

func setOrRemove(el *etree.Element, key, value string) {
	if value == "" {
		el.RemoveAttr(key)
		return
	}
	el.CreateAttr(key, value)
}

func setOrRemoveInt(el *etree.Element, key string, value *int) {
	if value == nil {
		el.RemoveAttr(key)
		return
	}
	el.CreateAttr(key, strconv.Itoa(*value))
}

// FindByID returns the first Song child of container whose UniqueId
// attribute equals id, or nil. At most one is expected to match; the
// scan stops at the first hit.
func FindByID(container *etree.Element, id string) *etree.Element {
	for _, el := range container.SelectElements(types.SongTag) {
		if el.SelectAttrValue(types.UniqueIDAttr, "") == id {
			return el
		}
	}
	return nil
}

// SplitTags decodes a Tags attribute value. Segments are split on ";"
// with empty segments discarded and order preserved.
func SplitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, seg := range strings.Split(raw, types.TagSeparator) {
		if seg == "" {
			continue
		}
		tags = append(tags, seg)
	}
	return tags
}

// JoinTags encodes a tag list as a Tags attribute value. Tags containing
// a literal ";" are joined as-is and will split differently on decode;
// the format has no escape syntax.
func JoinTags(tags []string) string {
	return strings.Join(tags, types.TagSeparator)
}

// Package quran provides the static content catalog: Juz and Surah
// reference data and standard-mushaf page bounds. It is read-only.
package quran

import "fmt"

const (
	JuzCount   = 30
	SurahCount = 114
)

// VerseKey identifies a single verse as surah:ayah.
type VerseKey struct {
	Surah int
	Ayah  int
}

func (k VerseKey) String() string {
	return fmt.Sprintf("%d:%d", k.Surah, k.Ayah)
}

// JuzInfo describes one of the 30 divisions: its verse-key bounds and
// page bounds in the standard 604-page mushaf.
type JuzInfo struct {
	Number    int
	First     VerseKey
	Last      VerseKey
	StartPage int
	EndPage   int
}

// Juz returns the catalog entry for a Juz number between 1 and 30.
func Juz(number int) (JuzInfo, bool) {
	if number < 1 || number > JuzCount {
		return JuzInfo{}, false
	}
	return juzData[number-1], true
}

// SurahName returns the transliterated name for a Surah id between 1
// and 114, or an empty string for an unknown id.
func SurahName(id int) string {
	if id < 1 || id > SurahCount {
		return ""
	}
	return surahNames[id-1]
}

// SurahsInJuz returns the ids of the Surahs a Juz overlaps, in mushaf
// order.
func SurahsInJuz(number int) []int {
	info, ok := Juz(number)
	if !ok {
		return nil
	}
	var ids []int
	for id := info.First.Surah; id <= info.Last.Surah; id++ {
		ids = append(ids, id)
	}
	return ids
}

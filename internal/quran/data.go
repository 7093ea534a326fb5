package quran

// juzData holds the verse-key bounds of each Juz and its page range in
// the standard 604-page mushaf.
var juzData = [JuzCount]JuzInfo{
	{Number: 1, First: VerseKey{1, 1}, Last: VerseKey{2, 141}, StartPage: 1, EndPage: 21},
	{Number: 2, First: VerseKey{2, 142}, Last: VerseKey{2, 252}, StartPage: 22, EndPage: 41},
	{Number: 3, First: VerseKey{2, 253}, Last: VerseKey{3, 92}, StartPage: 42, EndPage: 61},
	{Number: 4, First: VerseKey{3, 93}, Last: VerseKey{4, 23}, StartPage: 62, EndPage: 81},
	{Number: 5, First: VerseKey{4, 24}, Last: VerseKey{4, 147}, StartPage: 82, EndPage: 101},
	{Number: 6, First: VerseKey{4, 148}, Last: VerseKey{5, 81}, StartPage: 102, EndPage: 121},
	{Number: 7, First: VerseKey{5, 82}, Last: VerseKey{6, 110}, StartPage: 122, EndPage: 141},
	{Number: 8, First: VerseKey{6, 111}, Last: VerseKey{7, 87}, StartPage: 142, EndPage: 161},
	{Number: 9, First: VerseKey{7, 88}, Last: VerseKey{8, 40}, StartPage: 162, EndPage: 181},
	{Number: 10, First: VerseKey{8, 41}, Last: VerseKey{9, 92}, StartPage: 182, EndPage: 201},
	{Number: 11, First: VerseKey{9, 93}, Last: VerseKey{11, 5}, StartPage: 202, EndPage: 221},
	{Number: 12, First: VerseKey{11, 6}, Last: VerseKey{12, 52}, StartPage: 222, EndPage: 241},
	{Number: 13, First: VerseKey{12, 53}, Last: VerseKey{14, 52}, StartPage: 242, EndPage: 261},
	{Number: 14, First: VerseKey{15, 1}, Last: VerseKey{16, 128}, StartPage: 262, EndPage: 281},
	{Number: 15, First: VerseKey{17, 1}, Last: VerseKey{18, 74}, StartPage: 282, EndPage: 301},
	{Number: 16, First: VerseKey{18, 75}, Last: VerseKey{20, 135}, StartPage: 302, EndPage: 321},
	{Number: 17, First: VerseKey{21, 1}, Last: VerseKey{22, 78}, StartPage: 322, EndPage: 341},
	{Number: 18, First: VerseKey{23, 1}, Last: VerseKey{25, 20}, StartPage: 342, EndPage: 361},
	{Number: 19, First: VerseKey{25, 21}, Last: VerseKey{27, 55}, StartPage: 362, EndPage: 381},
	{Number: 20, First: VerseKey{27, 56}, Last: VerseKey{29, 45}, StartPage: 382, EndPage: 401},
	{Number: 21, First: VerseKey{29, 46}, Last: VerseKey{33, 30}, StartPage: 402, EndPage: 421},
	{Number: 22, First: VerseKey{33, 31}, Last: VerseKey{36, 27}, StartPage: 422, EndPage: 441},
	{Number: 23, First: VerseKey{36, 28}, Last: VerseKey{39, 31}, StartPage: 442, EndPage: 461},
	{Number: 24, First: VerseKey{39, 32}, Last: VerseKey{41, 46}, StartPage: 462, EndPage: 481},
	{Number: 25, First: VerseKey{41, 47}, Last: VerseKey{45, 37}, StartPage: 482, EndPage: 501},
	{Number: 26, First: VerseKey{46, 1}, Last: VerseKey{51, 30}, StartPage: 502, EndPage: 521},
	{Number: 27, First: VerseKey{51, 31}, Last: VerseKey{57, 29}, StartPage: 522, EndPage: 541},
	{Number: 28, First: VerseKey{58, 1}, Last: VerseKey{66, 12}, StartPage: 542, EndPage: 561},
	{Number: 29, First: VerseKey{67, 1}, Last: VerseKey{77, 50}, StartPage: 562, EndPage: 581},
	{Number: 30, First: VerseKey{78, 1}, Last: VerseKey{114, 6}, StartPage: 582, EndPage: 604},
}

var surahNames = [SurahCount]string{
	"Al-Fatihah", "Al-Baqarah", "Ali 'Imran", "An-Nisa", "Al-Ma'idah",
	"Al-An'am", "Al-A'raf", "Al-Anfal", "At-Tawbah", "Yunus",
	"Hud", "Yusuf", "Ar-Ra'd", "Ibrahim", "Al-Hijr",
	"An-Nahl", "Al-Isra", "Al-Kahf", "Maryam", "Taha",
	"Al-Anbya", "Al-Hajj", "Al-Mu'minun", "An-Nur", "Al-Furqan",
	"Ash-Shu'ara", "An-Naml", "Al-Qasas", "Al-'Ankabut", "Ar-Rum",
	"Luqman", "As-Sajdah", "Al-Ahzab", "Saba", "Fatir",
	"Ya-Sin", "As-Saffat", "Sad", "Az-Zumar", "Ghafir",
	"Fussilat", "Ash-Shuraa", "Az-Zukhruf", "Ad-Dukhan", "Al-Jathiyah",
	"Al-Ahqaf", "Muhammad", "Al-Fath", "Al-Hujurat", "Qaf",
	"Adh-Dhariyat", "At-Tur", "An-Najm", "Al-Qamar", "Ar-Rahman",
	"Al-Waqi'ah", "Al-Hadid", "Al-Mujadila", "Al-Hashr", "Al-Mumtahanah",
	"As-Saf", "Al-Jumu'ah", "Al-Munafiqun", "At-Taghabun", "At-Talaq",
	"At-Tahrim", "Al-Mulk", "Al-Qalam", "Al-Haqqah", "Al-Ma'arij",
	"Nuh", "Al-Jinn", "Al-Muzzammil", "Al-Muddaththir", "Al-Qiyamah",
	"Al-Insan", "Al-Mursalat", "An-Naba", "An-Nazi'at", "'Abasa",
	"At-Takwir", "Al-Infitar", "Al-Mutaffifin", "Al-Inshiqaq", "Al-Buruj",
	"At-Tariq", "Al-A'la", "Al-Ghashiyah", "Al-Fajr", "Al-Balad",
	"Ash-Shams", "Al-Layl", "Ad-Duhaa", "Ash-Sharh", "At-Tin",
	"Al-'Alaq", "Al-Qadr", "Al-Bayyinah", "Az-Zalzalah", "Al-'Adiyat",
	"Al-Qari'ah", "At-Takathur", "Al-'Asr", "Al-Humazah", "Al-Fil",
	"Quraysh", "Al-Ma'un", "Al-Kawthar", "Al-Kafirun", "An-Nasr",
	"Al-Masad", "Al-Ikhlas", "Al-Falaq", "An-Nas",
}

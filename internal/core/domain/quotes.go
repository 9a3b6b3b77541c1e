package domain

import "math/rand/v2"

var motivationalQuotes = map[Language][]string{
	LanguageIndonesian: {
		"Rajin nabung, masa depan tenang! 💪",
		"Sedikit demi sedikit, lama-lama jadi bukit! 🏔️",
		"Cekel duitmu, jangan sampai kebobolan! 💰",
		"Hemat pangkal kaya, boros pangkal melarat! 🌟",
		"Pelan tapi pasti, tabunganmu pasti terkumpul! 🎯",
		"Jangan kalah sama kopi, masa kalah sama tabungan? ☕",
		"Nabung hari ini, tersenyum masa depan! 😊",
		"Duit itu kayak temen, harus dijaga baik-baik! 👥",
	},
	LanguageJavanese: {
		"Rek, nggo opo tuku kopi saben dina iki? 😄",
		"Cekel duitmu ben ora mlayu! 💸",
		"Ojo boros, mengko sue nyesel rek! 😅",
		"Nabung sethithik-sethithik, mengko akeh! 🐷",
		"Duit kui ono wingine, ojo mung dipikir saiki! 🌈",
		"Ayo rek, ngirit ben sugih mengko! 💎",
		"Ojo kalah karo tonggo seng rajin nabung! 🏆",
		"Celengan cekel ojo nganti pecah rek! 🪙",
	},
}

var ngiritMessages = map[Language][]string{
	LanguageIndonesian: {
		"Eh tunggu dulu! Yakin mau beli ini? 🤔",
		"Butuh atau pengen doang nih? 💭",
		"Coba pikir lagi deh, penting gak sih? 🧐",
		"Tabunganmu nangis kalau jadi beli ini lho! 😢",
		"Mode Ngirit ON! Tunda dulu yuk pembeliannya! 🛑",
	},
	LanguageJavanese: {
		"Rek, yakin iki? Pikir-pikir disek! 🤔",
		"Butuh opo mung pengen tok iki? 💭",
		"Celenganmu nangis rek yen tuku iki! 😢",
		"Nggo opo rek? Tunda disek ojo? 🛑",
		"Ojo-ojo iki mung gengsi tok lho! 🧐",
	},
}

// RandomQuote picks a motivational quote in the given language.
// Unknown languages fall back to Indonesian.
func RandomQuote(lang Language) string {
	return pick(motivationalQuotes, lang)
}

// RandomNgiritMessage picks a frugality reminder in the given language.
func RandomNgiritMessage(lang Language) string {
	return pick(ngiritMessages, lang)
}

// Quotes returns the motivational quotes of a language.
func Quotes(lang Language) []string {
	return append([]string(nil), table(motivationalQuotes, lang)...)
}

// NgiritMessages returns the frugality reminders of a language.
func NgiritMessages(lang Language) []string {
	return append([]string(nil), table(ngiritMessages, lang)...)
}

func table(m map[Language][]string, lang Language) []string {
	if list, ok := m[lang]; ok {
		return list
	}
	return m[LanguageIndonesian]
}

func pick(m map[Language][]string, lang Language) string {
	list := table(m, lang)
	return list[rand.IntN(len(list))]
}

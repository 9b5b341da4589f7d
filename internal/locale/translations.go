package locale

// Translation tables keyed by language code, then sign or category id.
// English lives in the catalogue itself and has no table here.

var signTranslations = map[string]map[int]translation{
	"et": {
		1:  {Word: "Üks"},
		2:  {Word: "Kaks"},
		3:  {Word: "Kolm"},
		4:  {Word: "Neli"},
		5:  {Word: "Viis"},
		6:  {Word: "Kümme"},
		7:  {Word: "Sada"},
		10: {Word: "Ema"},
		11: {Word: "Isa"},
		12: {Word: "Õde"},
		13: {Word: "Vend"},
		14: {Word: "Vanaema"},
		15: {Word: "Sõber"},
		16: {Word: "Beebi"},
		20: {Word: "Punane"},
		21: {Word: "Sinine"},
		22: {Word: "Roheline"},
		23: {Word: "Kollane"},
		24: {Word: "Must"},
		25: {Word: "Valge"},
		30: {Word: "Leib"},
		31: {Word: "Piim"},
		32: {Word: "Vesi"},
		33: {Word: "Kohv"},
		34: {Word: "Õun"},
		35: {Word: "Kala"},
		36: {Word: "Sööma"},
		40: {Word: "Täna"},
		41: {Word: "Homme"},
		42: {Word: "Eile"},
		43: {Word: "Nädal"},
		44: {Word: "Kuu"},
		45: {Word: "Aasta"},
		50: {Word: "Tere"},
		51: {Word: "Aitäh"},
		52: {Word: "Palun"},
		53: {Word: "Vabandust"},
		54: {Word: "Head aega"},
		55: {Word: "Jah"},
		56: {Word: "Ei"},
		60: {Word: "Päike"},
		61: {Word: "Vihm"},
		62: {Word: "Lumi"},
		63: {Word: "Tuul"},
		64: {Word: "Külm"},
		70: {Word: "Rõõmus"},
		71: {Word: "Kurb"},
		72: {Word: "Vihane"},
		73: {Word: "Väsinud"},
		74: {Word: "Armastus"},
		80: {Word: "Kodu"},
		81: {Word: "Kool"},
		82: {Word: "Pood"},
		83: {Word: "Buss"},
		84: {Word: "Rong"},
		85: {Word: "Linn"},
	},
	"ru": {
		1:  {Word: "Один"},
		2:  {Word: "Два"},
		3:  {Word: "Три"},
		4:  {Word: "Четыре"},
		5:  {Word: "Пять"},
		10: {Word: "Мама"},
		11: {Word: "Папа"},
		15: {Word: "Друг"},
		20: {Word: "Красный"},
		21: {Word: "Синий"},
		22: {Word: "Зелёный"},
		31: {Word: "Молоко"},
		32: {Word: "Вода"},
		40: {Word: "Сегодня"},
		50: {Word: "Привет"},
		51: {Word: "Спасибо"},
		54: {Word: "Пока"},
		60: {Word: "Солнце"},
		62: {Word: "Снег"},
		70: {Word: "Радостный"},
		80: {Word: "Дом"},
	},
}

var categoryTitles = map[string]map[int]string{
	"et": {
		1: "Numbrid",
		2: "Perekond ja suhted",
		3: "Värvid",
		4: "Toit ja joogid",
		5: "Aeg ja kalender",
		6: "Tervitused ja väljendid",
		7: "Ilm",
		8: "Tunded",
		9: "Reisimine ja kohad",
	},
	"ru": {
		1: "Числа",
		2: "Семья и отношения",
		3: "Цвета",
		4: "Еда и напитки",
		5: "Время и календарь",
		6: "Приветствия и фразы",
		7: "Погода",
		8: "Эмоции и чувства",
		9: "Путешествия и места",
	},
}

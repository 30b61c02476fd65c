package translate

import (
	"strings"
	"unicode"
)

// languageNames maps ISO language codes reported by the translation service
// to display names
var languageNames = map[string]string{
	"af":    "afrikaans",
	"sq":    "albanian",
	"am":    "amharic",
	"ar":    "arabic",
	"hy":    "armenian",
	"az":    "azerbaijani",
	"eu":    "basque",
	"be":    "belarusian",
	"bn":    "bengali",
	"bs":    "bosnian",
	"bg":    "bulgarian",
	"ca":    "catalan",
	"zh-cn": "chinese (simplified)",
	"zh-tw": "chinese (traditional)",
	"zh":    "chinese",
	"hr":    "croatian",
	"cs":    "czech",
	"da":    "danish",
	"nl":    "dutch",
	"en":    "english",
	"eo":    "esperanto",
	"et":    "estonian",
	"fi":    "finnish",
	"fr":    "french",
	"gl":    "galician",
	"ka":    "georgian",
	"de":    "german",
	"el":    "greek",
	"gu":    "gujarati",
	"ht":    "haitian creole",
	"he":    "hebrew",
	"iw":    "hebrew",
	"hi":    "hindi",
	"hu":    "hungarian",
	"is":    "icelandic",
	"id":    "indonesian",
	"ga":    "irish",
	"it":    "italian",
	"ja":    "japanese",
	"jw":    "javanese",
	"kn":    "kannada",
	"kk":    "kazakh",
	"km":    "khmer",
	"ko":    "korean",
	"lo":    "lao",
	"la":    "latin",
	"lv":    "latvian",
	"lt":    "lithuanian",
	"mk":    "macedonian",
	"ms":    "malay",
	"ml":    "malayalam",
	"mt":    "maltese",
	"mr":    "marathi",
	"mn":    "mongolian",
	"my":    "myanmar (burmese)",
	"ne":    "nepali",
	"no":    "norwegian",
	"fa":    "persian",
	"pl":    "polish",
	"pt":    "portuguese",
	"pa":    "punjabi",
	"ro":    "romanian",
	"ru":    "russian",
	"sr":    "serbian",
	"si":    "sinhala",
	"sk":    "slovak",
	"sl":    "slovenian",
	"es":    "spanish",
	"sw":    "swahili",
	"sv":    "swedish",
	"tl":    "filipino",
	"ta":    "tamil",
	"te":    "telugu",
	"th":    "thai",
	"tr":    "turkish",
	"uk":    "ukrainian",
	"ur":    "urdu",
	"uz":    "uzbek",
	"vi":    "vietnamese",
	"cy":    "welsh",
	"yi":    "yiddish",
}

// LanguageName resolves a language code to a capitalized display name,
// falling back to "Unknown" for unrecognized codes
func LanguageName(code string) string {
	name, ok := languageNames[strings.ToLower(code)]
	if !ok {
		return "Unknown"
	}
	return capitalize(name)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

package keysym

// builtin maps lower-cased aliases to evdev key names.
var builtin = map[string]Key{
	"q": "KEY_Q",
	"w": "KEY_W",
	"e": "KEY_E",
	"r": "KEY_R",
	"t": "KEY_T",
	"y": "KEY_Y",
	"u": "KEY_U",
	"i": "KEY_I",
	"o": "KEY_O",
	"p": "KEY_P",
	"a": "KEY_A",
	"s": "KEY_S",
	"d": "KEY_D",
	"f": "KEY_F",
	"g": "KEY_G",
	"h": "KEY_H",
	"j": "KEY_J",
	"k": "KEY_K",
	"l": "KEY_L",
	"z": "KEY_Z",
	"x": "KEY_X",
	"c": "KEY_C",
	"v": "KEY_V",
	"b": "KEY_B",
	"n": "KEY_N",
	"m": "KEY_M",
	"1": "KEY_1",
	"2": "KEY_2",
	"3": "KEY_3",
	"4": "KEY_4",
	"5": "KEY_5",
	"6": "KEY_6",
	"7": "KEY_7",
	"8": "KEY_8",
	"9": "KEY_9",
	"0": "KEY_0",

	"escape":    "KEY_ESC",
	"backspace": "KEY_BACKSPACE",
	"return":    "KEY_ENTER",
	"enter":     "KEY_ENTER",
	"tab":       "KEY_TAB",
	"space":     "KEY_SPACE",
	"plus":      "KEY_KPPLUS",
	"minus":     "KEY_MINUS",
	"-":         "KEY_MINUS",
	"equal":     "KEY_EQUAL",
	"=":         "KEY_EQUAL",
	"grave":     "KEY_GRAVE",
	"`":         "KEY_GRAVE",
	"print":     "KEY_SYSRQ",

	// media
	"volumeup":              "KEY_VOLUMEUP",
	"xf86audioraisevolume":  "KEY_VOLUMEUP",
	"volumedown":            "KEY_VOLUMEDOWN",
	"xf86audiolowervolume":  "KEY_VOLUMEDOWN",
	"mute":                  "KEY_MUTE",
	"xf86audiomute":         "KEY_MUTE",
	"brightnessup":          "KEY_BRIGHTNESSUP",
	"xf86monbrightnessup":   "KEY_BRIGHTNESSUP",
	"brightnessdown":        "KEY_BRIGHTNESSDOWN",
	"xf86monbrightnessdown": "KEY_BRIGHTNESSDOWN",
	"xf86audioplay":         "KEY_PLAYPAUSE",
	"xf86audioprev":         "KEY_PREVIOUSSONG",
	"xf86audionext":         "KEY_NEXTSONG",
	"xf86audiostop":         "KEY_STOP",
	"xf86audiomedia":        "KEY_MEDIA",

	// punctuation
	",":            "KEY_COMMA",
	"comma":        "KEY_COMMA",
	".":            "KEY_DOT",
	"dot":          "KEY_DOT",
	"period":       "KEY_DOT",
	"/":            "KEY_SLASH",
	"question":     "KEY_QUESTION",
	"slash":        "KEY_SLASH",
	"backslash":    "KEY_BACKSLASH",
	"leftbrace":    "KEY_LEFTBRACE",
	"[":            "KEY_LEFTBRACE",
	"bracketleft":  "KEY_LEFTBRACE",
	"rightbrace":   "KEY_RIGHTBRACE",
	"]":            "KEY_RIGHTBRACE",
	"bracketright": "KEY_RIGHTBRACE",
	";":            "KEY_SEMICOLON",
	"semicolon":    "KEY_SEMICOLON",
	"'":            "KEY_APOSTROPHE",
	"apostrophe":   "KEY_APOSTROPHE",

	// navigation and editing
	"left":     "KEY_LEFT",
	"right":    "KEY_RIGHT",
	"up":       "KEY_UP",
	"down":     "KEY_DOWN",
	"pause":    "KEY_PAUSE",
	"home":     "KEY_HOME",
	"delete":   "KEY_DELETE",
	"insert":   "KEY_INSERT",
	"end":      "KEY_END",
	"prior":    "KEY_PAGEDOWN",
	"next":     "KEY_PAGEUP",
	"pagedown": "KEY_PAGEDOWN",
	"pageup":   "KEY_PAGEUP",

	"f1":  "KEY_F1",
	"f2":  "KEY_F2",
	"f3":  "KEY_F3",
	"f4":  "KEY_F4",
	"f5":  "KEY_F5",
	"f6":  "KEY_F6",
	"f7":  "KEY_F7",
	"f8":  "KEY_F8",
	"f9":  "KEY_F9",
	"f10": "KEY_F10",
	"f11": "KEY_F11",
	"f12": "KEY_F12",
	"f13": "KEY_F13",
	"f14": "KEY_F14",
	"f15": "KEY_F15",
	"f16": "KEY_F16",
	"f17": "KEY_F17",
	"f18": "KEY_F18",
	"f19": "KEY_F19",
	"f20": "KEY_F20",
	"f21": "KEY_F21",
	"f22": "KEY_F22",
	"f23": "KEY_F23",
	"f24": "KEY_F24",

	// locks and extra media keys
	"capslock":         "KEY_CAPSLOCK",
	"numlock":          "KEY_NUMLOCK",
	"scrolllock":       "KEY_SCROLLLOCK",
	"menu":             "KEY_COMPOSE",
	"xf86audiomicmute": "KEY_MICMUTE",
	"xf86audiopause":   "KEY_PLAYPAUSE",
}

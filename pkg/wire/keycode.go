package wire

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var (
	keyCodeNames  = make(map[KeyCode]int, len(keyCodeTable))
	keyCodeByName = make(map[string]KeyCode, len(keyCodeTable))
)

// keyAliases are the short names accepted by ParseKeyCode for the keys a
// remote uses most.
var keyAliases = map[string]KeyCode{
	"up":      KeyCodeDpadUp,
	"down":    KeyCodeDpadDown,
	"left":    KeyCodeDpadLeft,
	"right":   KeyCodeDpadRight,
	"ok":      KeyCodeDpadCenter,
	"select":  KeyCodeDpadCenter,
	"vol+":    KeyCodeVolumeUp,
	"vol-":    KeyCodeVolumeDown,
	"ch+":     KeyCodeChannelUp,
	"ch-":     KeyCodeChannelDown,
	"play":    KeyCodeMediaPlay,
	"pause":   KeyCodeMediaPause,
	"stop":    KeyCodeMediaStop,
	"rewind":  KeyCodeMediaRewind,
	"ff":      KeyCodeMediaFastForward,
	"next":    KeyCodeMediaNext,
	"prev":    KeyCodeMediaPrevious,
	"input":   KeyCodeTvInput,
	"recents": KeyCodeAppSwitch,
}

func init() {
	for i, e := range keyCodeTable {
		keyCodeNames[e.code] = i
		keyCodeByName[e.name] = e.code
	}
}

// String returns the protocol name, e.g. "KEYCODE_HOME".
func (k KeyCode) String() string {
	if i, ok := keyCodeNames[k]; ok {
		return "KEYCODE_" + keyCodeTable[i].name
	}
	return "KEYCODE(" + strconv.Itoa(int(k)) + ")"
}

// Description returns the human description of the key, if one is known.
func (k KeyCode) Description() string {
	if i, ok := keyCodeNames[k]; ok {
		return keyCodeTable[i].desc
	}
	return ""
}

// Known reports whether k is listed in the key code table.
func (k KeyCode) Known() bool {
	_, ok := keyCodeNames[k]
	return ok
}

// ParseKeyCode accepts a protocol name ("KEYCODE_HOME"), a bare name
// ("home"), a short alias ("vol+") or a decimal value. Single digits name
// the digit keys, so "7" is KEYCODE_7 and not key code 7.
func ParseKeyCode(s string) (KeyCode, error) {
	s = strings.TrimSpace(s)
	if k, ok := keyAliases[strings.ToLower(s)]; ok {
		return k, nil
	}
	name := strings.TrimPrefix(strings.ToUpper(s), "KEYCODE_")
	if k, ok := keyCodeByName[name]; ok {
		return k, nil
	}
	if n, err := strconv.ParseInt(s, 10, 32); err == nil && n >= 0 {
		return KeyCode(n), nil
	}
	return KeyCodeUnknown, fmt.Errorf("unknown key code %q", s)
}

// KeyCodes returns every known key code in ascending order.
func KeyCodes() []KeyCode {
	out := make([]KeyCode, 0, len(keyCodeTable))
	for _, e := range keyCodeTable {
		out = append(out, e.code)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

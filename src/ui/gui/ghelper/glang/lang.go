package glang

import (
	"encoding/json"
	"errors"
	"fmt"
	"septic/src/ui/gui/gbase/gassets"
)

type LangType int

const (
	EN LangType = iota
	RU
	ZZ
)

var ErrUnsupported = errors.New("unsupported lang")

func LangTypeByString(lang string) LangType {
	switch lang {
	case "en":
		return EN
	case "ru":
		return RU
	}
	return ZZ
}

func (t LangType) String() string {
	switch t {
	case EN:
		return "en"
	case RU:
		return "ru"
	}
	return ""
}

// Next cycles through the supported languages.
func (t LangType) Next() LangType {
	return (t + 1) % ZZ
}

type GUILangWorker struct {
	workdir string
	lang    LangType
	dict    map[string]string
}

func NewGUILangWorker(workdir, lang string) (*GUILangWorker, error) {
	lw := &GUILangWorker{workdir: workdir}
	t := LangTypeByString(lang)
	if t == ZZ {
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, lang)
	}
	if err := lw.SetLang(t); err != nil {
		return nil, err
	}
	return lw, nil
}

func (lw *GUILangWorker) GetLang() LangType {
	return lw.lang
}

// SetLang swaps the dictionary. On error the previous one stays active.
func (lw *GUILangWorker) SetLang(l LangType) error {
	if l == ZZ {
		return ErrUnsupported
	}
	data, err := gassets.ReadAsset(lw.workdir + "/" + l.String() + ".json")
	if err != nil {
		return err
	}
	dict := make(map[string]string)
	if err := json.Unmarshal(data, &dict); err != nil {
		return fmt.Errorf("error decode %s dictionary: %w", l, err)
	}
	lw.lang = l
	lw.dict = dict
	return nil
}

// T returns the key itself when it has no translation.
func (lw *GUILangWorker) T(key string) string {
	if v, ok := lw.dict[key]; ok {
		return v
	}
	return key
}

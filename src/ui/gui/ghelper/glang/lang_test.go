package glang

import (
	"errors"
	"testing"
)

const dir = "assets/lang"

func TestDictionariesHaveTheSameKeys(t *testing.T) {
	en, err := NewGUILangWorker(dir, "en")
	if err != nil {
		t.Fatal(err)
	}
	ru, err := NewGUILangWorker(dir, "ru")
	if err != nil {
		t.Fatal(err)
	}
	for k := range en.dict {
		if _, ok := ru.dict[k]; !ok {
			t.Errorf("ru misses %q", k)
		}
	}
	for k := range ru.dict {
		if _, ok := en.dict[k]; !ok {
			t.Errorf("en misses %q", k)
		}
	}
}

func TestTranslate(t *testing.T) {
	lw, err := NewGUILangWorker(dir, "en")
	if err != nil {
		t.Fatal(err)
	}
	if got := lw.T("nav.crab"); got != "Go to Crab!" {
		t.Fatalf("got %q", got)
	}
	if got := lw.T("no.such.key"); got != "no.such.key" {
		t.Fatalf("missing key must echo, got %q", got)
	}
	if err := lw.SetLang(lw.GetLang().Next()); err != nil {
		t.Fatal(err)
	}
	if lw.GetLang() != RU || lw.T("notfound") != "404!!" {
		t.Fatalf("lang %v", lw.GetLang())
	}
}

func TestUnsupported(t *testing.T) {
	if _, err := NewGUILangWorker(dir, "de"); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("got %v", err)
	}
}

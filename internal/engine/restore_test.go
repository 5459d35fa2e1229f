package engine

import "testing"

func TestShouldRestore(t *testing.T) {
	cases := []struct {
		name    string
		st      wordState
		english bool
		dict    Dictionary
		want    bool
	}{
		{"no transform keeps", wordState{hadTransform: false}, true, nil, false},
		{"stroke always keeps", wordState{hadTransform: true, hasStroke: true}, true, nil, false},
		{"pending breve restores", wordState{hadTransform: true, pendingBreve: true}, false, nil, true},
		{"impossible no dict follows english detector", wordState{hadTransform: true, vnState: VerdictImpossible}, true, nil, true},
		{"impossible no dict no english pattern keeps", wordState{hadTransform: true, vnState: VerdictImpossible}, false, nil, false},
		{"complete with tone keeps", wordState{hadTransform: true, hasTone: true, vnState: VerdictComplete}, true, nil, false},
		{"complete keeps", wordState{hadTransform: true, vnState: VerdictComplete}, true, nil, false},
		{"incomplete with tone and english restores", wordState{hadTransform: true, hasTone: true, vnState: VerdictIncomplete}, true, nil, true},
		{"incomplete with tone no english keeps", wordState{hadTransform: true, hasTone: true, vnState: VerdictIncomplete}, false, nil, false},
		{"too many modifiers restores", wordState{hadTransform: true, rawLen: 6, transformedLen: 4, vnState: VerdictIncomplete}, false, nil, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := shouldRestore(c.st, c.english, c.dict); got != c.want {
				t.Errorf("shouldRestore(%+v, %v) = %v, want %v", c.st, c.english, got, c.want)
			}
		})
	}
}

type fakeDict map[string]bool

func (f fakeDict) Contains(w string) bool { return f[w] }

func TestShouldRestoreWithDictionary(t *testing.T) {
	dict := fakeDict{"law": true}
	st := wordState{hadTransform: true, vnState: VerdictImpossible, rawWord: "law", transformedWord: "lăw"}
	if !shouldRestore(st, false, dict) {
		t.Errorf("raw form in dictionary should restore")
	}

	dict2 := fakeDict{"lăw": true}
	st2 := wordState{hadTransform: true, vnState: VerdictImpossible, rawWord: "law", transformedWord: "lăw"}
	if shouldRestore(st2, false, dict2) {
		t.Errorf("transformed form in dictionary should keep")
	}
}

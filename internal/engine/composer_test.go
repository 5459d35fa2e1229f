package engine

import "testing"

func TestComposeChar(t *testing.T) {
	cases := []struct {
		name string
		rec  CharRecord
		want rune
	}{
		{"bare a", CharRecord{Base: 'a'}, 'a'},
		{"a with sac", CharRecord{Base: 'a', Tone: ToneSac}, 'á'},
		{"a circumflex huyen", CharRecord{Base: 'a', Mark: MarkCircumflex, Tone: ToneHuyen}, 'ầ'},
		{"o horn nang", CharRecord{Base: 'o', Mark: MarkHorn, Tone: ToneNang}, 'ợ'},
		{"u horn sac caps", CharRecord{Base: 'u', Mark: MarkHorn, Tone: ToneSac, Caps: true}, 'Ứ'},
		{"stroke d", CharRecord{Base: 'd', Stroke: true}, 'đ'},
		{"stroke d caps", CharRecord{Base: 'd', Stroke: true, Caps: true}, 'Đ'},
		{"a breve huyen", CharRecord{Base: 'a', Mark: MarkBreve, Tone: ToneHuyen}, 'ằ'},
		{"consonant passthrough", CharRecord{Base: 'n'}, 'n'},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := composeChar(c.rec); got != c.want {
				t.Errorf("composeChar(%+v) = %q, want %q", c.rec, got, c.want)
			}
		})
	}
}

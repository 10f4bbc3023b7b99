package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		vars     map[string]string
		want     string
	}{
		{
			name:     "substitutes mapped placeholders",
			template: "{name} has {points} pts",
			vars:     map[string]string{"name": "Kim", "points": "7"},
			want:     "Kim has 7 pts",
		},
		{
			name:     "unmapped placeholder renders empty",
			template: "{name} {label}",
			vars:     map[string]string{"name": "Kim"},
			want:     "Kim ",
		},
		{
			name:     "no placeholders",
			template: "plain text",
			vars:     map[string]string{"name": "Kim"},
			want:     "plain text",
		},
		{
			name:     "nil vars",
			template: "{name}",
			vars:     nil,
			want:     "",
		},
		{
			name:     "korean template",
			template: "[메디컬로드맵] {name} 학생 벌점 누적 {points}점입니다.",
			vars:     map[string]string{"name": "김철수", "points": "7"},
			want:     "[메디컬로드맵] 김철수 학생 벌점 누적 7점입니다.",
		},
		{
			name:     "repeated placeholder",
			template: "{name}/{name}",
			vars:     map[string]string{"name": "Kim"},
			want:     "Kim/Kim",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderTemplate(tt.template, tt.vars))
		})
	}
}

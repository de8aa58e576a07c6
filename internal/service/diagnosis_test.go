package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// entries ジャンルごとの (正解数, 総数) から時系列順のログ列を組み立てる。
func entries(groups ...struct {
	genre   string
	correct int
	total   int
}) []logEntry {
	var out []logEntry
	for _, g := range groups {
		for i := 0; i < g.total; i++ {
			out = append(out, logEntry{correct: i < g.correct, genre: g.genre})
		}
	}
	return out
}

func group(genre string, correct, total int) struct {
	genre   string
	correct int
	total   int
} {
	return struct {
		genre   string
		correct int
		total   int
	}{genre, correct, total}
}

func TestClassify_FewerThanFiveLogsIsFixedBeginner(t *testing.T) {
	for n := 0; n < 5; n++ {
		logs := make([]logEntry, n)
		for i := range logs {
			logs[i] = logEntry{correct: true, genre: "A"}
		}
		d := classifyLogs(logs)
		if d.PatternType != PatternBeginner {
			t.Errorf("%d logs: got %q, want %q", n, d.PatternType, PatternBeginner)
		}
		if d.Score != 0 {
			t.Errorf("%d logs: got score %d, want 0", n, d.Score)
		}
		if len(d.GenreStats) != 0 {
			t.Errorf("%d logs: genre stats should be empty, got %v", n, d.GenreStats)
		}
		if d.GenreConcentration != 0 || d.GrowthRate != 0 {
			t.Errorf("%d logs: concentration/growth should be 0, got %d/%v", n, d.GenreConcentration, d.GrowthRate)
		}
		if d.Recommendation != patternRecommendations[PatternBeginner] {
			t.Errorf("%d logs: unexpected recommendation %q", n, d.Recommendation)
		}
	}
}

func TestClassify_Balanced(t *testing.T) {
	// 2ジャンル、どちらも正答率 70%、ばらつき 0 → balanced。
	d := classifyLogs(entries(group("A", 7, 10), group("B", 7, 10)))

	require.Equal(t, PatternBalanced, d.PatternType)
	assert.Equal(t, 70, d.Score) // min(100, overall) = 70
	assert.Equal(t, 0, d.GenreConcentration)
	assert.Equal(t, GenreStat{CorrectRate: 70, Count: 10}, d.GenreStats["A"])
	assert.Equal(t, GenreStat{CorrectRate: 70, Count: 10}, d.GenreStats["B"])
	assert.Equal(t, patternRecommendations[PatternBalanced], d.Recommendation)
}

func TestClassify_Specialist(t *testing.T) {
	// 90% と 40%：開き 50 ≥ 30、最大 90 ≥ 70。最低 40 < 70 なので balanced は不成立。
	d := classifyLogs(entries(group("A", 9, 10), group("B", 2, 5)))

	require.Equal(t, PatternSpecialist, d.PatternType)
	assert.Equal(t, 90, d.Score) // min(100, max correctRate)
	assert.Equal(t, 50, d.GenreConcentration)
	assert.Equal(t, GenreStat{CorrectRate: 90, Count: 10}, d.GenreStats["A"])
	assert.Equal(t, GenreStat{CorrectRate: 40, Count: 5}, d.GenreStats["B"])
}

func TestClassify_Growth(t *testing.T) {
	// 前半 2/5=40% → 後半 4/5=80%。伸び率 100% ≥ 20、後半 80 ≥ 60。
	logs := []logEntry{
		{true, "A"}, {true, "A"}, {false, "A"}, {false, "A"}, {false, "A"},
		{true, "A"}, {true, "A"}, {true, "A"}, {true, "A"}, {false, "A"},
	}
	d := classifyLogs(logs)

	require.Equal(t, PatternGrowth, d.PatternType)
	assert.Equal(t, 72, d.Score) // min(100, 60 * 1.2)
	assert.Equal(t, 100.0, d.GrowthRate)
	assert.Equal(t, 0, d.GenreConcentration) // 1ジャンルでは濃度 0
}

func TestClassify_Improvement(t *testing.T) {
	// 前半 4/10=40% → 後半 5/10=50%。伸び率 25 だが後半 50 < 60 で growth 不成立。
	// 全体 45 < 60 かつ伸び率 > 10 で improvement。
	var logs []logEntry
	for i := 0; i < 10; i++ {
		logs = append(logs, logEntry{correct: i < 4, genre: "A"})
	}
	for i := 0; i < 10; i++ {
		logs = append(logs, logEntry{correct: i < 5, genre: "A"})
	}
	d := classifyLogs(logs)

	require.Equal(t, PatternImprovement, d.PatternType)
	assert.Equal(t, 46, d.Score) // round(45 * 0.8 + 10)
	assert.Equal(t, 25.0, d.GrowthRate)
}

func TestClassify_FallbackBeginner(t *testing.T) {
	// 前半 3/5=60% → 後半 2/5=40%。どの規則にも当たらず beginner、
	// スコアは全体正答率。伸び率は負で小数 2 桁に丸める。
	logs := []logEntry{
		{true, "A"}, {true, "A"}, {true, "A"}, {false, "A"}, {false, "A"},
		{true, "A"}, {true, "A"}, {false, "A"}, {false, "A"}, {false, "A"},
	}
	d := classifyLogs(logs)

	require.Equal(t, PatternBeginner, d.PatternType)
	assert.Equal(t, 50, d.Score)
	assert.Equal(t, -33.33, d.GrowthRate)
}

func TestClassify_ZeroFirstHalfRateGuardsGrowth(t *testing.T) {
	// 前半全問不正解。伸び率はゼロ除算を避けて厳密に 0。
	logs := []logEntry{
		{false, "A"}, {false, "A"}, {false, "A"}, {false, "A"}, {false, "A"},
		{true, "A"}, {true, "A"}, {true, "A"}, {true, "A"}, {true, "A"},
	}
	d := classifyLogs(logs)

	assert.Equal(t, 0.0, d.GrowthRate)
	require.Equal(t, PatternBeginner, d.PatternType)
	assert.Equal(t, 50, d.Score)
}

func TestClassify_BalancedTakesPriorityOverSpecialist(t *testing.T) {
	// 全ジャンル 70 以上でも開きが 30 以上なら specialist の条件も満たすが、
	// stddev が 15 以下なら balanced が先勝ちする。100 と 70 は stddev 15。
	d := classifyLogs(entries(group("A", 10, 10), group("B", 7, 10)))

	require.Equal(t, PatternBalanced, d.PatternType)
	assert.Equal(t, 85, d.Score) // overall 17/20
	assert.Equal(t, 30, d.GenreConcentration)
}

func TestClassify_ConcentrationCapsAtHundred(t *testing.T) {
	// 開き 100（100% と 0%）でも濃度は 100 で頭打ち。
	d := classifyLogs(entries(group("A", 10, 10), group("B", 0, 10)))

	assert.Equal(t, 100, d.GenreConcentration)
	require.Equal(t, PatternSpecialist, d.PatternType)
	assert.Equal(t, 100, d.Score)
}

func TestStdDev(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []float64{70}, 0},
		{"identical", []float64{70, 70, 70}, 0},
		{"spread", []float64{100, 70}, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stdDev(tt.values); got != tt.want {
				t.Errorf("stdDev(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestRecommendationsCoverAllPatterns(t *testing.T) {
	for _, p := range []string{PatternBalanced, PatternSpecialist, PatternGrowth, PatternImprovement, PatternBeginner} {
		if patternRecommendations[p] == "" {
			t.Errorf("pattern %q has no recommendation", p)
		}
	}
}

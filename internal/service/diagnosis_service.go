package service

import (
	"errors"
	"math"
	"time"

	"elearn_backend/internal/repository"
	"elearn_backend/internal/util"
	"elearn_backend/pkg/monitoring"

	"gorm.io/gorm"
)

// 学習パターンの 5 類型。
const (
	PatternBalanced    = "balanced"
	PatternSpecialist  = "specialist"
	PatternGrowth      = "growth"
	PatternImprovement = "improvement"
	PatternBeginner    = "beginner"
)

// 診断に必要な最小履歴数。これ未満は固定の beginner 結果を返す。
const minLogsForDiagnosis = 5

// ジャンル未設定（問題が消えている場合も含む）のときのラベル。
const unknownGenre = "Unknown"

// patternRecommendations 類型ごとの定型推奨文。キャッシュ済み診断を
// 再表示するときもこの表から引き直す。
var patternRecommendations = map[string]string{
	PatternBalanced:    "全ジャンルでバランスよく正解できています。この調子で幅広い学習を続けましょう。",
	PatternSpecialist:  "得意なジャンルが際立っています。苦手なジャンルにも取り組んで弱点を減らしましょう。",
	PatternGrowth:      "後半の正答率が大きく伸びています。成長の勢いを保って学習を続けましょう。",
	PatternImprovement: "正答率は改善傾向にあります。基礎の復習を挟みながら着実に積み上げましょう。",
	PatternBeginner:    "まだ学習データが少ないようです。まずはクイズに挑戦して履歴を増やしましょう。",
}

// GenreStat ジャンル別の正答率と回答数。
type GenreStat struct {
	CorrectRate float64 `json:"correctRate"`
	Count       int     `json:"count"`
}

// PatternDiagnosis 診断結果。GenreStats と Recommendation は毎回生成され、
// 永続化されるのはユーザー行のキャッシュ列だけ。
type PatternDiagnosis struct {
	PatternType        string               `json:"patternType"`
	Score              int                  `json:"score"`
	GenreStats         map[string]GenreStat `json:"genreStats"`
	GenreConcentration int                  `json:"genreConcentration"`
	GrowthRate         float64              `json:"growthRate"`
	Recommendation     string               `json:"recommendation"`
	DiagnosedAt        time.Time            `json:"diagnosedAt"`
}

// logEntry 診断入力の 1 件。時刻昇順で渡される前提。
type logEntry struct {
	correct bool
	genre   string
}

// patternStats 1 回の診断で共有する統計量。どの規則が発火しても
// concentration / growthRate は同じ値を報告する。
type patternStats struct {
	overallRate    float64
	genreStats     map[string]GenreStat
	correctRates   []float64 // ジャンル出現順
	minRate        float64
	maxRate        float64
	stdDev         float64
	concentration  float64
	growthRate     float64
	firstHalfLen   int
	secondHalfLen  int
	secondHalfRate float64
}

func correctRate(entries []logEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	correct := 0
	for _, e := range entries {
		if e.correct {
			correct++
		}
	}
	return 100 * float64(correct) / float64(len(entries))
}

// stdDev correctRates の標準偏差。balanced 判定の閾値（15 以下）は
// この量に対して調整されているので、分散には変更しないこと。
func stdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}

func computeStats(entries []logEntry) *patternStats {
	s := &patternStats{
		overallRate: correctRate(entries),
		genreStats:  make(map[string]GenreStat),
	}

	type genreAcc struct {
		total   int
		correct int
	}
	order := []string{}
	acc := map[string]*genreAcc{}
	for _, e := range entries {
		a, ok := acc[e.genre]
		if !ok {
			a = &genreAcc{}
			acc[e.genre] = a
			order = append(order, e.genre)
		}
		a.total++
		if e.correct {
			a.correct++
		}
	}
	for _, g := range order {
		a := acc[g]
		rate := 100 * float64(a.correct) / float64(a.total)
		s.genreStats[g] = GenreStat{CorrectRate: rate, Count: a.total}
		s.correctRates = append(s.correctRates, rate)
	}

	s.minRate = s.correctRates[0]
	s.maxRate = s.correctRates[0]
	for _, r := range s.correctRates[1:] {
		s.minRate = math.Min(s.minRate, r)
		s.maxRate = math.Max(s.maxRate, r)
	}
	s.stdDev = stdDev(s.correctRates)

	if len(s.correctRates) >= 2 {
		s.concentration = math.Min(100, s.maxRate-s.minRate)
	}

	// 時系列を前半/後半に分割して伸び率を出す。前半が空か正答率 0 の
	// ときは 0 とする（ゼロ除算の回避）。
	midpoint := len(entries) / 2
	firstHalf := entries[:midpoint]
	secondHalf := entries[midpoint:]
	s.firstHalfLen = len(firstHalf)
	s.secondHalfLen = len(secondHalf)
	s.secondHalfRate = correctRate(secondHalf)
	firstHalfRate := correctRate(firstHalf)
	if s.firstHalfLen > 0 && firstHalfRate > 0 {
		s.growthRate = 100 * (s.secondHalfRate - firstHalfRate) / firstHalfRate
	}

	return s
}

// patternRule 優先順で評価される判定規則。最初に一致したものが採用される。
type patternRule struct {
	name  string
	match func(s *patternStats) bool
	score func(s *patternStats) float64
}

// patternRules 優先順位: balanced → specialist → growth → improvement。
// どれにも当たらなければ beginner。複数の条件が同時に成り立つ入力域が
// 存在するが、先勝ちが仕様。
var patternRules = []patternRule{
	{
		name: PatternBalanced,
		match: func(s *patternStats) bool {
			return len(s.correctRates) >= 2 && s.minRate >= 70 && s.stdDev <= 15
		},
		score: func(s *patternStats) float64 { return math.Min(100, s.overallRate) },
	},
	{
		name: PatternSpecialist,
		match: func(s *patternStats) bool {
			return len(s.correctRates) >= 2 && s.maxRate-s.minRate >= 30 && s.maxRate >= 70
		},
		score: func(s *patternStats) float64 { return math.Min(100, s.maxRate) },
	},
	{
		name: PatternGrowth,
		match: func(s *patternStats) bool {
			return s.firstHalfLen > 0 && s.secondHalfLen > 0 && s.growthRate >= 20 && s.secondHalfRate >= 60
		},
		score: func(s *patternStats) float64 { return math.Min(100, s.overallRate*1.2) },
	},
	{
		name: PatternImprovement,
		match: func(s *patternStats) bool {
			return s.overallRate < 60 && s.growthRate > 10
		},
		score: func(s *patternStats) float64 { return s.overallRate*0.8 + 10 },
	},
}

// classifyLogs 学習履歴を 5 類型のいずれか一つに分類する。履歴が 0 件でも
// エラーにはせず固定の beginner 結果を返す。
func classifyLogs(entries []logEntry) PatternDiagnosis {
	if len(entries) < minLogsForDiagnosis {
		return PatternDiagnosis{
			PatternType:        PatternBeginner,
			Score:              0,
			GenreStats:         map[string]GenreStat{},
			GenreConcentration: 0,
			GrowthRate:         0,
			Recommendation:     patternRecommendations[PatternBeginner],
		}
	}

	s := computeStats(entries)

	name := PatternBeginner
	raw := s.overallRate
	for _, rule := range patternRules {
		if rule.match(s) {
			name = rule.name
			raw = rule.score(s)
			break
		}
	}

	return PatternDiagnosis{
		PatternType:        name,
		Score:              int(math.Round(raw)),
		GenreStats:         s.genreStats,
		GenreConcentration: int(math.Round(s.concentration)),
		GrowthRate:         math.Round(s.growthRate*100) / 100,
		Recommendation:     patternRecommendations[name],
	}
}

// DiagnosisService 学習履歴からパターン診断を行い、要約をユーザー行へ
// キャッシュする。
type DiagnosisService struct {
	UserRepo        *repository.UserRepository
	LearningLogRepo *repository.LearningLogRepository
}

func NewDiagnosisService(userRepo *repository.UserRepository, logRepo *repository.LearningLogRepository) *DiagnosisService {
	return &DiagnosisService{
		UserRepo:        userRepo,
		LearningLogRepo: logRepo,
	}
}

// Diagnose 対象ユーザーの履歴を読み直して診断する。結果の要約はユーザー行に
// 保存するが、診断自体はキャッシュを一切参照しない。
func (s *DiagnosisService) Diagnose(userID uint) (*PatternDiagnosis, error) {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	logs, err := s.LearningLogRepo.FindByUserAsc(userID)
	if err != nil {
		return nil, err
	}

	entries := make([]logEntry, 0, len(logs))
	for _, l := range logs {
		genre := unknownGenre
		if l.Question != nil && l.Question.Genre != "" {
			genre = l.Question.Genre
		}
		entries = append(entries, logEntry{correct: l.IsCorrect, genre: genre})
	}

	d := classifyLogs(entries)
	d.DiagnosedAt = time.Now()

	monitoring.DiagnosisCounter.WithLabelValues(d.PatternType).Inc()

	if err := s.UserRepo.SaveDiagnosis(userID, d.PatternType, d.Score, d.GenreConcentration, d.GrowthRate, d.DiagnosedAt); err != nil {
		return nil, err
	}

	return &d, nil
}

// DiagnosisSummary ユーザー行にキャッシュされた要約。推奨文は保存されず、
// 類型から引き直す。
type DiagnosisSummary struct {
	PatternType        string    `json:"patternType"`
	Score              int       `json:"score"`
	GenreConcentration int       `json:"genreConcentration"`
	GrowthRate         float64   `json:"growthRate"`
	Recommendation     string    `json:"recommendation"`
	DiagnosedAt        time.Time `json:"diagnosedAt"`
}

// CachedSummary 前回診断の要約を返す。一度も診断していなければ NotFound。
func (s *DiagnosisService) CachedSummary(userID uint) (*DiagnosisSummary, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	if user.PatternType == "" || user.DiagnosedAt == nil {
		return nil, util.ErrNoDiagnosis
	}
	return &DiagnosisSummary{
		PatternType:        user.PatternType,
		Score:              user.PatternScore,
		GenreConcentration: user.GenreConcentration,
		GrowthRate:         user.GrowthRate,
		Recommendation:     patternRecommendations[user.PatternType],
		DiagnosedAt:        *user.DiagnosedAt,
	}, nil
}

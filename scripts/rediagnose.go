// 全ユーザーのパターン診断を手動で一括実行するスクリプト
//
// 診断は通常 API 経由でオンデマンドに実行されるが、診断規則を変更した後や
// 履歴データを大量投入した後に、キャッシュ列をまとめて作り直したいときに使う。
//
// 用法: go run scripts/rediagnose.go

package main

import (
	"log"

	"elearn_backend/internal/config"
	"elearn_backend/internal/repository"
	"elearn_backend/internal/service"
	"elearn_backend/pkg/database"
	"elearn_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("設定ファイルを読み込めません: %v", err)
	}

	logger.InitLogger(cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("データベース接続に失敗しました: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	logRepo := repository.NewLearningLogRepository(db)
	diagnosis := service.NewDiagnosisService(userRepo, logRepo)

	users, err := userRepo.ListAll()
	if err != nil {
		log.Fatalf("ユーザー一覧の取得に失敗しました: %v", err)
	}

	var failed int
	for _, u := range users {
		if _, err := diagnosis.Diagnose(u.ID); err != nil {
			failed++
			log.Printf("ユーザー %d の診断に失敗: %v", u.ID, err)
		}
	}

	log.Printf("診断完了: 対象 %d 件、失敗 %d 件", len(users), failed)
}

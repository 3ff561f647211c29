package main

import (
	"Tuanke/config"
	"Tuanke/dao"
	"Tuanke/pkg/client"
	"Tuanke/pkg/database"
	"Tuanke/pkg/log"
	"Tuanke/service"
	"Tuanke/types"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	app := &cli.App{
		Name:  "dedup-tool",
		Usage: "merge duplicate images and rewrite references",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "",
				Usage: "config file path, defaults to configs/config.${APP_ENV}.yaml",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.L.Fatal("dedup tool failed", zap.Error(err))
	}
}

func run(ctx *cli.Context) error {
	path := ctx.String("config")
	if path == "" {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "dev"
		}
		path = fmt.Sprintf("configs/config.%s.yaml", env)
	}
	cfg := config.New(path)

	db := database.NewDB(cfg)
	redisClient := client.NewRedisClient(cfg)

	svc := &service.DedupService{
		Upload:      cfg.Upload,
		Redis:       redisClient,
		ImageDAO:    dao.NewImage(db),
		SupplierDAO: dao.NewSupplier(db),
		GroupBuyDAO: dao.NewGroupBuy(db),
	}

	report, err := svc.Run(ctx.Context)
	if err != nil {
		return err
	}

	printReport(report)
	return nil
}

func printReport(report *types.MigrationReport) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("指标", "数量")
	_ = table.Append([]string{"扫描文件数", strconv.Itoa(report.ScannedCount)})
	_ = table.Append([]string{"去重后文件数", strconv.Itoa(report.UniqueCount)})
	_ = table.Append([]string{"重复文件数", strconv.Itoa(report.DuplicateCount)})
	_ = table.Append([]string{"删除文件数", strconv.Itoa(report.RemovedCount)})
	_ = table.Append([]string{"新登记资产数", strconv.Itoa(report.NewAssetCount)})
	_ = table.Append([]string{"改写供货商数", strconv.Itoa(len(report.UpdatedSuppliers))})
	_ = table.Append([]string{"改写团购数", strconv.Itoa(len(report.UpdatedGroupBuys))})
	_ = table.Append([]string{"跳过文件数", strconv.Itoa(len(report.SkippedFiles))})
	_ = table.Render()

	if len(report.SkippedFiles) > 0 {
		fmt.Println()
		skipped := tablewriter.NewWriter(os.Stdout)
		skipped.Header("跳过文件", "原因")
		for _, f := range report.SkippedFiles {
			_ = skipped.Append([]string{f.Filename, f.Reason})
		}
		_ = skipped.Render()
	}
}

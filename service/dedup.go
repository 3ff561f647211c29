package service

import (
	"Tuanke/config"
	"Tuanke/dao"
	"Tuanke/models"
	"Tuanke/pkg/log"
	"Tuanke/pkg/response"
	"Tuanke/types"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

const (
	dedupLockKey     = "dedup:images:lock"
	dedupLockTTL     = 10 * time.Minute
	dedupHashWorkers = 8
)

// DedupService 图片去重批处理任务：扫描上传目录、按内容哈希合并重复
// 文件、改写业务记录里的图片引用、删除多余文件。
// 同一时刻只允许一个实例执行，用 redis 锁跨进程互斥
type DedupService struct {
	Upload      *config.UploadConfig
	Redis       *redis.Client
	ImageDAO    *dao.Image
	SupplierDAO *dao.Supplier
	GroupBuyDAO *dao.GroupBuy
}

var _ IDedupService = (*DedupService)(nil)

type IDedupService interface {
	Run(ctx context.Context) (*types.MigrationReport, error)
}

func (s *DedupService) Run(ctx context.Context) (*types.MigrationReport, error) {
	ok, err := s.Redis.SetNX(ctx, dedupLockKey, 1, dedupLockTTL).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, response.NewInvalidStateError("去重任务正在执行中，请稍后再试")
	}
	defer s.Redis.Del(context.WithoutCancel(ctx), dedupLockKey)

	report := &types.MigrationReport{
		UpdatedSuppliers: make([]*types.AffectedSupplier, 0),
		UpdatedGroupBuys: make([]*types.AffectedGroupBuy, 0),
		SkippedFiles:     make([]*types.SkippedFile, 0),
	}

	// 1. 扫描目录并并行计算哈希。单个文件出错只记录，不中断整体
	hashes, skipped, err := scanAndHash(s.Upload.Dir)
	if err != nil {
		return nil, err
	}
	report.SkippedFiles = append(report.SkippedFiles, skipped...)
	report.ScannedCount = len(hashes)

	byHash := make(map[string][]string)
	for name, h := range hashes {
		byHash[h] = append(byHash[h], name)
	}
	report.UniqueCount = len(byHash)
	report.DuplicateCount = report.ScannedCount - report.UniqueCount

	// 2. 每个哈希组里字典序最小的文件名作为保留文件
	canonical := buildCanonicalMap(byHash)

	// 3. 没入库的哈希补一条资产记录
	known, err := s.ImageDAO.ListHashes(ctx)
	if err != nil {
		return nil, err
	}
	for h, names := range byHash {
		if _, exists := known[h]; exists {
			continue
		}
		keep := canonical[names[0]]
		asset := &models.ImageAsset{
			Filename:     keep,
			OriginalName: keep,
			Hash:         h,
		}
		if err := s.ImageDAO.CreateAsset(ctx, asset); err != nil {
			log.L.Warn("create image asset failed",
				zap.String("filename", keep),
				zap.Error(err),
			)
			continue
		}
		report.NewAssetCount++
	}

	// 4. 改写业务记录的图片引用，只有真正变化的记录才落库
	suppliers, err := s.SupplierDAO.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, supplier := range suppliers {
		rewritten, changed := rewriteImageRefs(supplier.Images, canonical)
		if !changed {
			continue
		}
		if err := s.SupplierDAO.UpdateImages(ctx, supplier.ID, rewritten); err != nil {
			log.L.Warn("rewrite supplier images failed",
				zap.Int64("supplier_id", supplier.ID),
				zap.Error(err),
			)
			continue
		}
		report.UpdatedSuppliers = append(report.UpdatedSuppliers, &types.AffectedSupplier{
			ID:   supplier.ID,
			Name: supplier.Name,
		})
	}

	groupBuys, err := s.GroupBuyDAO.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, groupBuy := range groupBuys {
		rewritten, changed := rewriteImageRefs(groupBuy.Images, canonical)
		if !changed {
			continue
		}
		if err := s.GroupBuyDAO.UpdateImages(ctx, groupBuy.ID, rewritten); err != nil {
			log.L.Warn("rewrite group buy images failed",
				zap.Int64("group_buy_id", groupBuy.ID),
				zap.Error(err),
			)
			continue
		}
		report.UpdatedGroupBuys = append(report.UpdatedGroupBuys, &types.AffectedGroupBuy{
			ID:                groupBuy.ID,
			Name:              groupBuy.Name,
			GroupBuyStartDate: groupBuy.GroupBuyStartDate,
		})
	}

	// 5. 引用都指向保留文件后，删掉多余的重复文件
	for old, keep := range canonical {
		if old == keep {
			continue
		}
		if err := os.Remove(filepath.Join(s.Upload.Dir, old)); err != nil {
			log.L.Warn("remove duplicate file failed",
				zap.String("filename", old),
				zap.Error(err),
			)
			report.SkippedFiles = append(report.SkippedFiles, &types.SkippedFile{
				Filename: old,
				Reason:   "删除失败: " + err.Error(),
			})
			continue
		}
		report.RemovedCount++
	}

	log.L.Info("image dedup finished",
		zap.Int("scanned", report.ScannedCount),
		zap.Int("unique", report.UniqueCount),
		zap.Int("removed", report.RemovedCount),
	)
	return report, nil
}

// scanAndHash 扫描目录下所有普通文件并计算 SHA-256。
// 返回 文件名 -> 哈希，以及被跳过的文件
func scanAndHash(dir string) (map[string]string, []*types.SkippedFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}

	var (
		mu      sync.Mutex
		hashes  = make(map[string]string)
		skipped = make([]*types.SkippedFile, 0)
	)

	p := pool.New().WithMaxGoroutines(dedupHashWorkers)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		p.Go(func() {
			h, err := hashFile(filepath.Join(dir, name))

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.L.Warn("hash file failed", zap.String("filename", name), zap.Error(err))
				skipped = append(skipped, &types.SkippedFile{
					Filename: name,
					Reason:   "哈希计算失败: " + err.Error(),
				})
				return
			}
			hashes[name] = h
		})
	}
	p.Wait()

	return hashes, skipped, nil
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// buildCanonicalMap 为每个扫描到的文件给出保留文件名，
// 保留文件映射到自身
func buildCanonicalMap(byHash map[string][]string) map[string]string {
	canonical := make(map[string]string)
	for _, names := range byHash {
		sort.Strings(names)
		keep := names[0]
		for _, name := range names {
			canonical[name] = keep
		}
	}
	return canonical
}

// rewriteImageRefs 把引用列表里的文件名替换成保留文件名，
// 同一条记录里的重复引用按集合语义收敛，保持首次出现的顺序。
// 不在映射里的引用原样保留
func rewriteImageRefs(refs []string, canonical map[string]string) ([]string, bool) {
	rewritten := make([]string, 0, len(refs))
	seen := make(map[string]struct{}, len(refs))
	changed := false

	for _, ref := range refs {
		target := ref
		if keep, ok := canonical[ref]; ok {
			target = keep
		}
		if target != ref {
			changed = true
		}
		if _, dup := seen[target]; dup {
			changed = true
			continue
		}
		seen[target] = struct{}{}
		rewritten = append(rewritten, target)
	}

	return rewritten, changed
}

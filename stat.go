package pagebt

import "sync/atomic"

type ExportStat struct {
	PageReads   uint64
	PageWrites  uint64
	PageAllocs  uint64
	Splits      uint64
	RootGrowths uint64
}

type iStat struct {
	pageReads   atomic.Uint64
	pageWrites  atomic.Uint64
	pageAllocs  atomic.Uint64
	splits      atomic.Uint64
	rootGrowths atomic.Uint64
}

func (s *iStat) export() ExportStat {
	return ExportStat{
		PageReads:   s.pageReads.Load(),
		PageWrites:  s.pageWrites.Load(),
		PageAllocs:  s.pageAllocs.Load(),
		Splits:      s.splits.Load(),
		RootGrowths: s.rootGrowths.Load(),
	}
}

func (s *iStat) reset() {
	s.pageReads.Store(0)
	s.pageWrites.Store(0)
	s.pageAllocs.Store(0)
	s.splits.Store(0)
	s.rootGrowths.Store(0)
}

package detector

import (
	"slices"

	"go.trai.ch/relock/internal/core/domain"
)

// normalizeLockPin rewrites a lock-resolved reference's pin before
// comparison. An unpinned or range-pinned manifest entry's pin is adopted so
// the lock entry never appears to differ merely because it recorded the
// resolved commit; a concrete manifest commit pin keeps the resolved commit
// in place so a mismatch is detected. Lock entries with no manifest
// counterpart lose their pin entirely.
func normalizeLockPin(ref domain.RemoteFileRef, mg *domain.Group) domain.RemoteFileRef {
	if mg == nil {
		ref.Pin = domain.VersionPin{}
		return ref
	}
	mf, ok := mg.RemoteFileNamed(ref.Name)
	if !ok {
		ref.Pin = domain.VersionPin{}
		return ref
	}
	if mf.Pin.Kind != domain.PinCommit {
		ref.Pin = mf.Pin
	}
	return ref
}

// remoteFileChanges computes the per-group remote file references requiring
// resolution: manifest references with no matching normalized lock entry,
// plus every lock reference of a group the manifest no longer declares.
// The result is sorted by the reference total order.
func remoteFileChanges(mg *domain.Group, lg *domain.LockGroup) []domain.RemoteFileRef {
	var out []domain.RemoteFileRef

	switch {
	case mg == nil && lg == nil:
		return nil

	case mg == nil:
		// Whole group removed from the manifest; surface every lock
		// reference in resolved form minus its pin.
		for _, rf := range lg.RemoteFiles {
			out = append(out, normalizeLockPin(rf.Ref(), nil))
		}

	case lg == nil:
		// Whole group added to the manifest.
		for _, rf := range mg.RemoteFiles {
			out = append(out, rf.Ref())
		}

	default:
		normalized := make([]domain.RemoteFileRef, 0, len(lg.RemoteFiles))
		for _, rf := range lg.RemoteFiles {
			normalized = append(normalized, normalizeLockPin(rf.Ref(), mg))
		}
		for _, rf := range mg.RemoteFiles {
			ref := rf.Ref()
			matched := slices.ContainsFunc(normalized, ref.Matches)
			if !matched {
				out = append(out, ref)
			}
		}
	}

	slices.SortFunc(out, domain.RemoteFileRef.Compare)
	return out
}

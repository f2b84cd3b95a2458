package block

import (
	"github.com/cockroachdb/errors"

	"github.com/arloliu/rsconv/errs"
	"github.com/arloliu/rsconv/format"
	"github.com/arloliu/rsconv/section"
)

// Sizes holds the container sizes derived from a flat sequence, together
// with the positions of the sentinels they belong to.
type Sizes struct {
	Root uint32
	Head uint32
	Body uint32

	RootAt int
	HeadAt int
	BodyAt int
	EndAt  int // -1 when the sequence has no terminator
}

// RegionSizes computes the container sizes of seq without modifying it.
//
// The HEAD region runs from the block after HEAD up to the next BODY or
// "END ". The BODY region runs from the block after BODY up to the next
// "END ". Every block inside a region counts its payload plus its header.
// The root size is HEAD + BODY plus their two headers; the terminator is
// never counted.
func RegionSizes(seq Sequence) (Sizes, error) {
	sizes := Sizes{RootAt: -1, HeadAt: -1, BodyAt: -1, EndAt: -1}

	inHead, inBody := false, false
	for i := range seq {
		blk := &seq[i]
		switch blk.Code {
		case format.CodeEND:
			inHead, inBody = false, false
		case format.CodeBODY:
			inHead = false
		}

		if inHead {
			sizes.Head += blk.Size + section.HeaderSize
		}
		if inBody {
			sizes.Body += blk.Size + section.HeaderSize
		}

		switch blk.Code {
		case format.CodeAQFT:
			if sizes.RootAt < 0 {
				sizes.RootAt = i
			}
		case format.CodeHEAD:
			inHead = true
			if sizes.HeadAt < 0 {
				sizes.HeadAt = i
			}
		case format.CodeBODY:
			inBody = true
			if sizes.BodyAt < 0 {
				sizes.BodyAt = i
			}
		case format.CodeEND:
			if sizes.EndAt < 0 {
				sizes.EndAt = i
			}
		}
	}

	for _, s := range []struct {
		at   int
		code format.FourCC
	}{
		{sizes.RootAt, format.CodeAQFT},
		{sizes.HeadAt, format.CodeHEAD},
		{sizes.BodyAt, format.CodeBODY},
	} {
		if s.at < 0 {
			return sizes, errors.Wrapf(errs.ErrMissingSentinel, "%s", s.code.Quote())
		}
	}

	sizes.Root = RootSize(sizes.Head, sizes.Body)

	return sizes, nil
}

// RootSize applies the root container sizing rule.
func RootSize(head, body uint32) uint32 {
	return head + section.HeaderSize + body + section.HeaderSize
}

// Reconcile sets every leaf that holds a record to the size it encodes to,
// then writes the computed root, head and body sizes into the first AQFT,
// HEAD and BODY blocks of seq. Nothing is modified when a sentinel is
// missing.
func Reconcile(seq Sequence) error {
	if _, err := RegionSizes(seq); err != nil {
		return err
	}

	for i := range seq {
		if blk := &seq[i]; blk.Record != nil {
			blk.Size = blk.LeafSize()
		}
	}

	sizes, err := RegionSizes(seq)
	if err != nil {
		return err
	}

	seq[sizes.RootAt].Size = sizes.Root
	seq[sizes.HeadAt].Size = sizes.Head
	seq[sizes.BodyAt].Size = sizes.Body

	return nil
}

package block

import (
	"fmt"
	"io"

	"github.com/tomywire/tomywire/pkg/column"
	"github.com/tomywire/tomywire/pkg/coltype"
	"github.com/tomywire/tomywire/pkg/tomyerr"
	"github.com/tomywire/tomywire/pkg/wire"
)

const (
	infoFieldIsOverflows = 1
	infoFieldBucketNum   = 2
	infoFieldTerminator  = 0
)

// Write encodes b as: BlockInfo fields, column_count, row_count, then
// each column's (name, type-name, payload).
func Write(w io.Writer, b *Block) error {
	if err := writeInfo(w, b.info); err != nil {
		return err
	}
	if err := wire.WriteVarint(w, uint64(b.ColumnCount())); err != nil {
		return tomyerr.Wrap(tomyerr.IoFailure, "Write column_count", err)
	}
	if err := wire.WriteVarint(w, uint64(b.RowCount())); err != nil {
		return tomyerr.Wrap(tomyerr.IoFailure, "Write row_count", err)
	}
	for i := 0; i < b.ColumnCount(); i++ {
		name := b.NameOf(i)
		col := b.Column(i)
		if err := wire.WriteString(w, name); err != nil {
			return tomyerr.Wrap(tomyerr.IoFailure, fmt.Sprintf("Write column %d name", i), err)
		}
		if err := wire.WriteString(w, col.Type().Name()); err != nil {
			return tomyerr.Wrap(tomyerr.IoFailure, fmt.Sprintf("Write column %d type", i), err)
		}
		if err := col.Save(w); err != nil {
			return tomyerr.Wrap(tomyerr.IoFailure, fmt.Sprintf("Write column %d payload", i), err)
		}
	}
	return nil
}

func writeInfo(w io.Writer, info Info) error {
	if err := wire.WriteVarint(w, infoFieldIsOverflows); err != nil {
		return tomyerr.Wrap(tomyerr.IoFailure, "Write info field 1", err)
	}
	if err := wire.WriteFixed(w, info.IsOverflows); err != nil {
		return tomyerr.Wrap(tomyerr.IoFailure, "Write is_overflows", err)
	}
	if err := wire.WriteVarint(w, infoFieldBucketNum); err != nil {
		return tomyerr.Wrap(tomyerr.IoFailure, "Write info field 2", err)
	}
	if err := wire.WriteFixed(w, info.BucketNum); err != nil {
		return tomyerr.Wrap(tomyerr.IoFailure, "Write bucket_num", err)
	}
	if err := wire.WriteVarint(w, infoFieldTerminator); err != nil {
		return tomyerr.Wrap(tomyerr.IoFailure, "Write info terminator", err)
	}
	return nil
}

func readInfo(r io.Reader) (Info, error) {
	info := DefaultInfo()
	for {
		fieldID, err := wire.ReadVarint(r)
		if err != nil {
			return info, tomyerr.Wrap(tomyerr.IoFailure, "read info field id", err)
		}
		switch fieldID {
		case infoFieldTerminator:
			return info, nil
		case infoFieldIsOverflows:
			v, err := wire.ReadFixed[uint8](r)
			if err != nil {
				return info, tomyerr.Wrap(tomyerr.IoFailure, "read is_overflows", err)
			}
			info.IsOverflows = v
		case infoFieldBucketNum:
			v, err := wire.ReadFixed[int32](r)
			if err != nil {
				return info, tomyerr.Wrap(tomyerr.IoFailure, "read bucket_num", err)
			}
			info.BucketNum = v
		default:
			return info, tomyerr.New(tomyerr.ProtocolError, fmt.Sprintf("unknown block info field id %d", fieldID))
		}
	}
}

// Read decodes a block frame from r into an existing Block (possibly
// already populated from a prior call, which is how streaming select
// results append to a reused Block — this is exactly why Array.Load
// must rebase offsets). If b already has columns, the wire frame's
// column count and each column's type name must match the existing
// columns; their payloads are appended in place. If b is empty, fresh
// columns are constructed from the wire frame's type names.
func Read(r io.Reader, b *Block) error {
	info, err := readInfo(r)
	if err != nil {
		return err
	}
	b.info = info

	numColumns, err := wire.ReadVarint(r)
	if err != nil {
		return tomyerr.Wrap(tomyerr.IoFailure, "read num_columns", err)
	}
	numRows, err := wire.ReadVarint(r)
	if err != nil {
		return tomyerr.Wrap(tomyerr.IoFailure, "read num_rows", err)
	}

	reuse := b.ColumnCount() > 0
	if reuse && int(numColumns) != b.ColumnCount() {
		return tomyerr.New(tomyerr.ProtocolError, fmt.Sprintf(
			"block column count mismatch: wire has %d, existing block has %d", numColumns, b.ColumnCount()))
	}

	for i := 0; i < int(numColumns); i++ {
		name, err := wire.ReadString(r)
		if err != nil {
			return tomyerr.Wrap(tomyerr.IoFailure, fmt.Sprintf("read column %d name", i), err)
		}
		typeName, err := wire.ReadString(r)
		if err != nil {
			return tomyerr.Wrap(tomyerr.IoFailure, fmt.Sprintf("read column %d type name", i), err)
		}
		typ, err := coltype.Parse(typeName)
		if err != nil {
			return tomyerr.Wrap(tomyerr.ProtocolError, fmt.Sprintf("parse column %d type %q", i, typeName), err)
		}

		var col column.Column
		if reuse {
			col = b.columns[i].col
			if !col.Type().Equal(typ) {
				return tomyerr.New(tomyerr.ProtocolError, fmt.Sprintf(
					"column %d type mismatch: wire has %s, existing block has %s", i, typ.Name(), col.Type().Name()))
			}
			b.columns[i].name = name
		} else {
			col, err = column.New(typ)
			if err != nil {
				return tomyerr.Wrap(tomyerr.ProtocolError, fmt.Sprintf("construct column %d", i), err)
			}
		}

		if err := col.Load(r, int(numRows)); err != nil {
			return tomyerr.Wrap(tomyerr.IoFailure, fmt.Sprintf("load column %d %q payload", i, name), err)
		}

		if !reuse {
			if err := b.AppendColumn(name, col); err != nil {
				return err
			}
		}
	}
	return nil
}

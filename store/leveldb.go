package store

import (
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	ldberrors "github.com/syndtr/goleveldb/leveldb/errors"
)

func dup(in []byte) []byte {
	out := make([]byte, len(in))
	copy(out, in)
	return out
}

// LevelDB implements the Backend interface over a LevelDB database.
type LevelDB struct {
	conn *leveldb.DB
}

var _ Backend = (*LevelDB)(nil)

// OpenLevelDB opens or creates the database in the directory path. A
// corrupted database is recovered.
func OpenLevelDB(path string) (*LevelDB, error) {
	conn, err := leveldb.OpenFile(path, nil)
	if ldberrors.IsCorrupted(err) {
		log.Warn("recovering corrupted database", "path", path, "error", err.Error())
		conn, err = leveldb.RecoverFile(path, nil)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "opening database %s", path)
	}
	return &LevelDB{conn: conn}, nil
}

func (db *LevelDB) Get(key []byte) ([]byte, error) {
	value, err := db.conn.Get(key, nil)
	if err == leveldb.ErrNotFound {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return dup(value), nil
}

func (db *LevelDB) Put(key, value []byte) error {
	return db.conn.Put(key, value, nil)
}

func (db *LevelDB) Delete(key []byte) error {
	return db.conn.Delete(key, nil)
}

func (db *LevelDB) Close() error {
	return db.conn.Close()
}

package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS cost_snapshots (
    snapshot_key         TEXT PRIMARY KEY,
    payload              BLOB NOT NULL,
    updated_at           TEXT NOT NULL
);
`

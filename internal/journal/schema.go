package journal

const schemaSQL = `
CREATE TABLE IF NOT EXISTS mutations (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    at        TEXT NOT NULL,
    entity    TEXT NOT NULL,
    entity_id TEXT NOT NULL,
    action    TEXT NOT NULL,
    detail    TEXT
);

CREATE INDEX IF NOT EXISTS idx_mutations_entity ON mutations(entity, entity_id);
`

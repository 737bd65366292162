package repo

// Schema is the postgres DDL the pg repo expects. Migrations are run out of band; tests
// and local setups apply it directly.
const Schema = `
create table if not exists products (
  id text primary key,
  name text not null,
  category text,
  price numeric(10,2) check (price is null or price >= 0),
  description text,
  metadata jsonb,
  created_at timestamptz not null default now(),
  updated_at timestamptz not null default now(),
  deleted_at timestamptz,
  contentful_created_at timestamptz,
  contentful_updated_at timestamptz
);
create index if not exists products_created_at_idx on products (created_at) where deleted_at is null;
create index if not exists products_category_idx on products (category) where deleted_at is null;
`

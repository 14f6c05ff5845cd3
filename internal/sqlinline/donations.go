package sqlinline

// The coalesce(paid_at, created_at) fallback covers rows migrated from the
// legacy system, which never stored a payment timestamp. Changing it would
// silently move historical donations between months.
const QSumCompletedDonations = `--sql 6aeb9c66-512c-447b-8541-3cafbb2a4bc3
select coalesce(sum(amount_minor), 0)::bigint
from donations
where organization_id = $1::uuid
  and status = 'completed'
  and coalesce(paid_at, created_at) >= $2::timestamptz
  and coalesce(paid_at, created_at) < $3::timestamptz
  and ($4::uuid is null or project_id = $4::uuid);
`

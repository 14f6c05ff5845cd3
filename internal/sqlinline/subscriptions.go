package sqlinline

const QCountLegacyAutopayments = `--sql 815b2b0b-9bf0-41ae-aead-6a14e874b5c8
select count(*)::int
from legacy_autopayments
where organization_id = $1::uuid
  and active;
`

const QCountUniqueSubscriptions = `--sql c9e56a17-8f40-4b10-9f4c-1d2aa1c25b6e
select count(distinct subscriber_id)::int
from recurring_subscriptions
where organization_id = $1::uuid
  and status = 'active';
`

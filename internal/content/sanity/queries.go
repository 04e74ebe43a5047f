package sanity

// GROQ projections. References are dereferenced server side so the mapper
// receives flat documents.
const (
	driverRowProjection = `{
  position,
  carNumber,
  "driver": driver->{_id, name},
  "coDriver": coDriver->{_id, name},
  time,
  gap,
  status
}`

	rallyBySlugQuery = `*[_type == "rally" && slug.current == $slug][0]{
  _id,
  title,
  "slug": slug.current,
  location,
  date,
  description,
  image,
  status,
  "specialStages": specialStages[]->{_id, name, distance, startTime, status}
}`

	liveResultsQuery = `*[_type == "liveResult" && rally._ref == $rallyId]{
  _id,
  "rally": rally->{_id},
  "results": results[]` + driverRowProjection + `
}`

	standingsQuery = `*[_type == "standingsEntry"]{
  rallyId,
  "standings": standings[]{position, carNumber, driver, totalTime, gap, points}
}`

	stageResultQuery = `*[_type == "stageResult" && stage._ref == $stageId][0]{
  "stage": stage->{_id, name},
  "results": results[]` + driverRowProjection + `
}`

	championshipsQuery = `*[_type == "championship"] | order(seasonStart desc){
  _id,
  name,
  "slug": slug.current,
  seasonStart,
  seasonEnd,
  "rallyIds": rallies[]._ref
}`
)

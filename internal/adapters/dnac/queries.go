package dnac

// GraphQL queries for the AI-RRM latest-summary endpoints. Field sets
// match what the controller UI requests; unused fields are kept so the
// controller serves the same cached projection.

const coverageQuery = `query getRfCoverageSummaryLatest01(
    $buildingId: String,
    $frequencyBand: Int
) {
    getRfCoverageSummaryLatest01(
        buildingId: $buildingId,
        frequencyBand: $frequencyBand
    ) {
        nodes {
            buildingId
            frequencyBand
            siteId
            timestampMs
            timestamp
            connectivitySnr
            connectivitySnrDensity
            apDensity
            totalApCount
            totalClients
        }
    }
}`

const performanceQuery = `query getRfPerformanceSummaryLatest01(
    $buildingId: String,
    $frequencyBand: Int
) {
    getRfPerformanceSummaryLatest01(
        buildingId: $buildingId,
        frequencyBand: $frequencyBand
    ) {
        nodes {
            buildingId
            frequencyBand
            siteId
            timestampMs
            timestamp
            totalRrmChangesV2
            rrmHealthScore
            apPercentageWithHighCci
        }
    }
}`

const insightsQuery = `query getCurrentInsights01(
    $buildingId: String,
    $frequencyBand: Int
) {
    getCurrentInsights01(
        buildingId: $buildingId,
        frequencyBand: $frequencyBand
    ) {
        nodes {
            buildingId
            frequencyBand
            siteId
            timestampMs
            timestamp
            insightType
            insightValue
            description
            reason
        }
    }
}`

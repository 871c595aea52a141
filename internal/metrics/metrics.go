package metrics

const Namespace = "agency"

package metrics

const Namespace = "notionhtml"

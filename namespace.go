package theseed

// Namespace names used by TheSeed-based wikis. The canonical values are
// Korean; they appear verbatim in backlink namespace filters and document
// titles ("분류:음악" is a category page).
type Namespace string

const (
	NamespaceCategory  Namespace = "분류"
	NamespaceDocument  Namespace = "문서"
	NamespaceFrame     Namespace = "틀"
	NamespaceFile      Namespace = "파일"
	NamespaceTemplate  Namespace = "템플릿"
	NamespaceUser      Namespace = "사용자"
	NamespaceMeta      Namespace = "더시드위키"
	NamespaceTrash     Namespace = "휴지통"
	NamespaceSystem    Namespace = "시스템"
	NamespaceFileTrash Namespace = "파일휴지통"
)

// BacklinkFlag filters a backlink query by how the referring document links
// to the target. Values combine as a bitmask.
type BacklinkFlag int

const (
	BacklinkAny      BacklinkFlag = 0
	BacklinkLink     BacklinkFlag = 1
	BacklinkFile     BacklinkFlag = 2
	BacklinkInclude  BacklinkFlag = 4
	BacklinkRedirect BacklinkFlag = 8
)
